package index

import (
	"github.com/snugcap/snug"
)

var ErrFull = snug.ErrFull
