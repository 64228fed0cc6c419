/*
   Copyright 2025 The kcenon Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package common

import (
	"context"
	"errors"

	"github.com/kcenon/common-system/apis"
	"github.com/kcenon/common-system/code"
)

// FromError converts an arbitrary Go error into an ErrorInfo at a module
// boundary.
//
// Conversion rules, first match wins:
//   - nil yields the zero ErrorInfo (code.Success);
//   - an ErrorInfo anywhere in the chain is returned as is;
//   - an apis.CodedError in the chain keeps its code and module;
//   - context.Canceled becomes code.Cancelled;
//   - context.DeadlineExceeded becomes code.Timeout;
//   - anything else becomes code.InternalError.
//
// Except for the pass-through case the original error is kept as the cause
// and its text becomes the message. module is used when the error does not
// name one itself.
func FromError(err error, module string) ErrorInfo {
	if err == nil {
		return ErrorInfo{}
	}

	var ei ErrorInfo
	if errors.As(err, &ei) {
		return ei
	}
	var pei *ErrorInfo
	if errors.As(err, &pei) && pei != nil {
		return *pei
	}

	var ce apis.CodedError
	if errors.As(err, &ce) {
		e := ErrorInfo{code: ce.ErrorCode(), message: err.Error(), module: module, cause: err}
		if me, ok := ce.(apis.ModuleError); ok && me.ErrorModule() != "" {
			e.module = me.ErrorModule()
		}
		if de, ok := ce.(apis.DetailedError); ok {
			e.details, e.hasDetails = de.ErrorDetails()
		}
		return e
	}

	c := code.InternalError
	switch {
	case errors.Is(err, context.Canceled):
		c = code.Cancelled
	case errors.Is(err, context.DeadlineExceeded):
		c = code.Timeout
	}
	return ErrorInfo{code: c, message: err.Error(), module: module, cause: err}
}

// CodeOf returns the code FromError would assign to err.
func CodeOf(err error) code.Code {
	return FromError(err, "").code
}

// ErrorView returns the wire shape of e.
func (e ErrorInfo) ErrorView() apis.ErrorView {
	v := apis.ErrorView{
		Code:    int32(e.code),
		Message: e.message,
		Module:  e.module,
	}
	if e.hasDetails {
		d := e.details
		v.Details = &d
	}
	return v
}

// FromView rebuilds an ErrorInfo from its wire shape. It is the inverse of
// ErrorInfo.ErrorView.
func FromView(v apis.ErrorView) ErrorInfo {
	e := ErrorInfo{
		code:    code.Code(v.Code),
		message: v.Message,
		module:  v.Module,
	}
	if v.Details != nil {
		e.details, e.hasDetails = *v.Details, true
	}
	return e
}

// Descriptor combines e with the transport statuses it resolved to. It is
// intended for structured logs and traces.
func (e ErrorInfo) Descriptor(st apis.Status) apis.ErrorDescriptor {
	return apis.ErrorDescriptor{
		Code:       int32(e.code),
		Symbol:     code.Name(e.code),
		Category:   code.CategoryOf(e.code).String(),
		Module:     e.module,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    e.message,
	}
}
