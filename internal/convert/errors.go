// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "errors"

var (
	// ErrNotFound means the input path does not name an existing regular file.
	ErrNotFound = errors.New("input file not found")

	// ErrConfiguration means the batch was rejected before any file was touched.
	ErrConfiguration = errors.New("invalid batch configuration")

	// ErrConversion covers read, decode, and write failures, including a
	// batch output directory that cannot be created.
	ErrConversion = errors.New("conversion failed")
)
