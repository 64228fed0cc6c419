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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"github.com/kcenon/common-system/code"
)

// defaultHTTP holds the built-in per-code HTTP statuses. Codes not listed
// here resolve through their category.
var defaultHTTP = map[code.Code]int{
	code.Success: http.StatusOK,

	// Common.
	code.InvalidArgument:     http.StatusBadRequest,
	code.NotFound:            http.StatusNotFound,
	code.PermissionDenied:    http.StatusForbidden,
	code.Timeout:             http.StatusGatewayTimeout,
	code.Cancelled:           http.StatusRequestTimeout, // 499 is common too; override where wanted.
	code.NotInitialized:      http.StatusServiceUnavailable,
	code.AlreadyExists:       http.StatusConflict,
	code.OutOfMemory:         http.StatusInsufficientStorage,
	code.IOError:             http.StatusInternalServerError,
	code.NetworkError:        http.StatusBadGateway,
	code.RegistryFrozen:      http.StatusConflict,
	code.AdapterChainTooDeep: http.StatusInternalServerError,
	code.InternalError:       http.StatusInternalServerError,

	// Thread.
	code.ThreadPoolFull:     http.StatusServiceUnavailable,
	code.ThreadPoolShutdown: http.StatusServiceUnavailable,
	code.ThreadJobRejected:  http.StatusServiceUnavailable,
	code.ThreadJobTimeout:   http.StatusGatewayTimeout,
	code.ThreadJobCancelled: http.StatusRequestTimeout,
	code.ThreadInvalidJob:   http.StatusBadRequest,
	code.ThreadQueueFull:    http.StatusTooManyRequests,

	// Container.
	code.ContainerValueTypeMismatch:     http.StatusBadRequest,
	code.ContainerInvalidValueType:      http.StatusBadRequest,
	code.ContainerDeserializationFailed: http.StatusBadRequest,
	code.ContainerInvalidFormat:         http.StatusBadRequest,
	code.ContainerKeyNotFound:           http.StatusNotFound,
	code.ContainerDuplicateKey:          http.StatusConflict,
	code.ContainerInvalidAllocationSize: http.StatusBadRequest,

	// Database.
	code.DatabaseConnectionTimeout:  http.StatusGatewayTimeout,
	code.DatabasePoolTimeout:        http.StatusGatewayTimeout,
	code.DatabaseQueryTimeout:       http.StatusGatewayTimeout,
	code.DatabaseTransactionTimeout: http.StatusGatewayTimeout,
	code.DatabaseQuerySyntaxError:   http.StatusInternalServerError,

	// Network.
	code.NetworkConnectionTimeout: http.StatusGatewayTimeout,
	code.NetworkSessionNotFound:   http.StatusNotFound,
	code.NetworkSessionExpired:    http.StatusUnauthorized,
	code.NetworkInvalidSession:    http.StatusUnauthorized,
	code.NetworkMessageTooLarge:   http.StatusRequestEntityTooLarge,
}

// defaultGRPC holds the built-in per-code gRPC statuses.
var defaultGRPC = map[code.Code]codes.Code{
	code.Success: codes.OK,

	code.InvalidArgument:     codes.InvalidArgument,
	code.NotFound:            codes.NotFound,
	code.PermissionDenied:    codes.PermissionDenied,
	code.Timeout:             codes.DeadlineExceeded,
	code.Cancelled:           codes.Canceled,
	code.NotInitialized:      codes.FailedPrecondition,
	code.AlreadyExists:       codes.AlreadyExists,
	code.OutOfMemory:         codes.ResourceExhausted,
	code.IOError:             codes.Internal,
	code.NetworkError:        codes.Unavailable,
	code.RegistryFrozen:      codes.FailedPrecondition,
	code.AdapterChainTooDeep: codes.Internal,
	code.InternalError:       codes.Internal,

	code.ThreadPoolFull:     codes.ResourceExhausted,
	code.ThreadPoolShutdown: codes.Unavailable,
	code.ThreadJobRejected:  codes.ResourceExhausted,
	code.ThreadJobTimeout:   codes.DeadlineExceeded,
	code.ThreadJobCancelled: codes.Canceled,
	code.ThreadInvalidJob:   codes.InvalidArgument,
	code.ThreadQueueFull:    codes.ResourceExhausted,

	code.ContainerValueTypeMismatch:     codes.InvalidArgument,
	code.ContainerInvalidValueType:      codes.InvalidArgument,
	code.ContainerDeserializationFailed: codes.InvalidArgument,
	code.ContainerInvalidFormat:         codes.InvalidArgument,
	code.ContainerKeyNotFound:           codes.NotFound,
	code.ContainerDuplicateKey:          codes.AlreadyExists,
	code.ContainerInvalidAllocationSize: codes.InvalidArgument,
	code.ContainerPoolExhausted:         codes.ResourceExhausted,

	code.DatabaseConnectionTimeout:     codes.DeadlineExceeded,
	code.DatabasePoolExhausted:         codes.ResourceExhausted,
	code.DatabasePoolTimeout:           codes.DeadlineExceeded,
	code.DatabaseQueryTimeout:          codes.DeadlineExceeded,
	code.DatabaseTransactionTimeout:    codes.DeadlineExceeded,
	code.DatabaseTransactionRolledBack: codes.Aborted,

	code.NetworkConnectionTimeout: codes.DeadlineExceeded,
	code.NetworkSessionNotFound:   codes.NotFound,
	code.NetworkSessionExpired:    codes.Unauthenticated,
	code.NetworkInvalidSession:    codes.Unauthenticated,
	code.NetworkMessageTooLarge:   codes.ResourceExhausted,
}

// categoryHTTP is the per-band fallback for codes without their own entry.
// The reserved band has none and goes to the global fallback.
var categoryHTTP = map[code.Category]int{
	code.CategoryCommon:     http.StatusInternalServerError,
	code.CategoryThread:     http.StatusServiceUnavailable,
	code.CategoryLogger:     http.StatusInternalServerError,
	code.CategoryMonitoring: http.StatusInternalServerError,
	code.CategoryContainer:  http.StatusInternalServerError,
	code.CategoryDatabase:   http.StatusServiceUnavailable,
	code.CategoryNetwork:    http.StatusBadGateway,
}

var categoryGRPC = map[code.Category]codes.Code{
	code.CategoryCommon:     codes.Internal,
	code.CategoryThread:     codes.Unavailable,
	code.CategoryLogger:     codes.Internal,
	code.CategoryMonitoring: codes.Internal,
	code.CategoryContainer:  codes.Internal,
	code.CategoryDatabase:   codes.Unavailable,
	code.CategoryNetwork:    codes.Unavailable,
}
