package main

import (
	"github.com/g-m-twostay/go-trees/Trees"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidItem   = Trees.InvalidError("items must be integers")
	ErrInvalidKind   = Trees.InvalidError("kind can only be bst/avl/rb/rank")
	ErrRequiredItems = Trees.InvalidError("at least one item is required")
	ErrRequiredQuery = Trees.InvalidError("at least one query is required")
)
