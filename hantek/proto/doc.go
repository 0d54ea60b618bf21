// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package proto implements the Hantek DSO wire format: the bit-packed
// command payload buffers sent over bulk/control transfers and the
// calibration block read once at connect time.
package proto // import "github.com/hwpl/openhantek/hantek/proto"
