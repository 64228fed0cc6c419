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

package grpcx

import (
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"

	common "github.com/kcenon/common-system"
	"github.com/kcenon/common-system/apis"
	"github.com/kcenon/common-system/code"
	"github.com/kcenon/common-system/mapper"
	"github.com/kcenon/common-system/module"
)

// Metadata keys of the google.rpc.ErrorInfo detail.
const (
	MetaCode     = "code"
	MetaCategory = "category"
	MetaDetails  = "details"
)

// UnknownReason is used as the ErrorInfo reason for unregistered codes.
const UnknownReason = "UNKNOWN_CODE"

// Status converts e into a gRPC status. A nil m uses mapper.Default().
//
// The success code yields an OK status without details.
func Status(e common.ErrorInfo, m apis.Mapper) *status.Status {
	if m == nil {
		m = mapper.Default()
	}
	gc := m.GRPCStatus(e.Code(), module.Module(e.Module()))
	if e.Code().IsSuccess() || gc == codes.OK {
		return status.New(gc, e.Message())
	}

	base := status.New(gc, e.Message())
	with, err := base.WithDetails(ErrorDetail(e))
	if err != nil {
		return base
	}
	return with
}

// ErrorDetail builds the google.rpc.ErrorInfo carried by Status.
func ErrorDetail(e common.ErrorInfo) *errdetails.ErrorInfo {
	reason := code.Name(e.Code())
	if reason == "" {
		reason = UnknownReason
	}
	md := map[string]string{
		MetaCode:     strconv.Itoa(int(e.Code())),
		MetaCategory: e.Category().String(),
	}
	if d, ok := e.Details(); ok {
		md[MetaDetails] = d
	}
	return &errdetails.ErrorInfo{
		Reason:   reason,
		Domain:   e.Module(),
		Metadata: md,
	}
}

// FromStatus rebuilds the ErrorInfo carried by st. It reports false when
// st has no ErrorInfo detail produced by Status.
func FromStatus(st *status.Status) (common.ErrorInfo, bool) {
	if st == nil {
		return common.ErrorInfo{}, false
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok {
			continue
		}
		raw, ok := info.GetMetadata()[MetaCode]
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			continue
		}
		v := apis.ErrorView{
			Code:    int32(n),
			Message: st.Message(),
			Module:  info.GetDomain(),
		}
		if d, ok := info.GetMetadata()[MetaDetails]; ok {
			v.Details = &d
		}
		return common.FromView(v), true
	}
	return common.ErrorInfo{}, false
}

// FromError extracts the ErrorInfo carried by a gRPC error.
func FromError(err error) (common.ErrorInfo, bool) {
	if err == nil {
		return common.ErrorInfo{}, false
	}
	st, ok := status.FromError(err)
	if !ok {
		return common.ErrorInfo{}, false
	}
	return FromStatus(st)
}

// MarshalStatusJSON renders st as protobuf JSON, details included.
func MarshalStatusJSON(st *status.Status) ([]byte, error) {
	return protojson.MarshalOptions{UseProtoNames: false}.Marshal(st.Proto())
}
