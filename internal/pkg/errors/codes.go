package errors

// File error codes. A file that fails with any of these is skipped, never
// partially rewritten.
const (
	CodeFileRead   = "FILE_READ_FAILED"
	CodeFileDecode = "FILE_DECODE_FAILED"
	CodeFileEncode = "FILE_ENCODE_FAILED"
	CodeFileWrite  = "FILE_WRITE_FAILED"
	CodeWalk       = "WALK_FAILED"
)

// Mapping table error codes.
const (
	CodeTableDecode   = "TABLE_DECODE_FAILED"
	CodePatternKind   = "PATTERN_KIND_INVALID"
	CodePatternEmpty  = "PATTERN_EMPTY"
	CodePatternRegexp = "PATTERN_REGEXP_INVALID"
)

// Convenience constructors using predefined codes.

// ErrFileRead creates a read failure for path.
func ErrFileRead(path string, err error) *AppError {
	return Wrap(err, CodeFileRead, "read file").WithParams(map[string]interface{}{"path": path})
}

// ErrFileDecode creates a decode failure for path.
func ErrFileDecode(path string, err error) *AppError {
	return Wrap(err, CodeFileDecode, "decode file").WithParams(map[string]interface{}{"path": path})
}

// ErrFileEncode creates an encode failure for path.
func ErrFileEncode(path string, err error) *AppError {
	return Wrap(err, CodeFileEncode, "encode file").WithParams(map[string]interface{}{"path": path})
}

// ErrFileWrite creates a write failure for path.
func ErrFileWrite(path string, err error) *AppError {
	return Wrap(err, CodeFileWrite, "write file").WithParams(map[string]interface{}{"path": path})
}
