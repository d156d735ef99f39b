package public

import "errors"

var (
	ErrIdExists               = errors.New("the record id already exists")
	ErrInvalidRecord          = errors.New("invalid record, id must be an integer and names can not be empty")
	ErrInvalidIndexType       = errors.New("the index type is not supported")
	ErrInvalidOptions         = errors.New("invalid engine options")
	ErrLuaInterpreterDisabled = errors.New("the lua Interpreter is not started, can not support execute lua script")
	ErrBatchCommitted         = errors.New("the batch has already been committed")
)
