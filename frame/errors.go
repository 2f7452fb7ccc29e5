// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"github.com/podata/po/array"
	"github.com/podata/po/base/errors"
)

// Error kinds returned by table operations, always wrapped with a
// message identifying the offending value. Test with [errors.Is].
var (
	// ErrTypeKind is a wrong container type, key type, element kind, or column entry type.
	ErrTypeKind = errors.New("wrong type")

	// ErrLengthMismatch is a difference in column, name list, or mask lengths.
	ErrLengthMismatch = array.ErrLengthMismatch

	// ErrDuplicateName is a repeated column name.
	ErrDuplicateName = errors.New("duplicate column name")

	// ErrColumnNotFound is a reference to a column name that is not in the table.
	ErrColumnNotFound = errors.New("column not found")

	// ErrShape is a wrong tuple arity, or a mask table without exactly one column.
	ErrShape = array.ErrShape

	// ErrIndexOutOfRange is a row or column position outside of the table.
	ErrIndexOutOfRange = array.ErrIndexOutOfRange

	// ErrUnsupportedIndexType is an index or selector that matches no recognized form.
	ErrUnsupportedIndexType = errors.New("unsupported index type")

	// ErrUnsupportedKind is an element kind without a dtype label.
	ErrUnsupportedKind = array.ErrKind

	// ErrSyntax is an index expression string that cannot be parsed.
	ErrSyntax = errors.New("invalid index expression")
)
