// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrNotFound           = errors.New("ErrNotFound")
	ErrNoBalance          = errors.New("ErrNoBalance")
	ErrAmount             = errors.New("ErrAmount")
	ErrSendSameToRecv     = errors.New("ErrSendSameToRecv")
	ErrInvalidAddress     = errors.New("ErrInvalidAddress")
	ErrInvalidParam       = errors.New("ErrInvalidParam")
	ErrActionNotSupport   = errors.New("ErrActionNotSupport")
	ErrDecode             = errors.New("ErrDecode")
	ErrIsClosed           = errors.New("ErrIsClosed")
	ErrConfigNotFound     = errors.New("ErrConfigNotFound")
	ErrExecNameNotAllow   = errors.New("ErrExecNameNotAllow")
	ErrSymbolNameNotAllow = errors.New("ErrSymbolNameNotAllow")
)
