// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"go.uber.org/zap"
)

// log is a package-level logger that is initialized to discard all output.
// The package consumer is expected to install a real logger via UseLogger if
// retarget tracing is wanted.
var log = zap.NewNop().Sugar()

// UseLogger sets the package-level logger. This should not be called while
// any other function of this package is executing.
func UseLogger(logger *zap.SugaredLogger) {
	log = logger
}
