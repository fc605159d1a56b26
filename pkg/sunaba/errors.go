package sunaba

import "github.com/sunabalang/sunaba/internal/errs"

// ParseError re-exports the single structured error type either pipeline
// stage returns: a human-readable message plus the column/row it refers
// to.
type ParseError = errs.ParseError
