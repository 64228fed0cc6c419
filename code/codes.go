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

package code

// Common / foundation layer codes (-1 .. -99).
//
// These are the codes the foundation itself reports and the generic classes
// every other subsystem may fall back to when nothing more specific applies.
const (
	// Success is the only non-failure code. It never appears inside an error
	// result; it exists so that "no error" has a value on the wire.
	Success Code = 0

	// InvalidArgument: the caller supplied a malformed or out-of-range value.
	// Can be mapped to an HTTP 400.
	InvalidArgument Code = -1

	// NotFound: the referenced entity does not exist.
	// Can be mapped to an HTTP 404.
	NotFound Code = -2

	// PermissionDenied: the caller is known but not allowed to do this.
	// Can be mapped to an HTTP 403.
	PermissionDenied Code = -3

	// Timeout: the operation exceeded its time budget.
	// Can be mapped to an HTTP 504.
	Timeout Code = -4

	// Cancelled: the operation was stopped by the caller.
	Cancelled Code = -5

	// NotInitialized: a component or value was used before set-up. Also the
	// code carried by an uninitialized result.
	NotInitialized Code = -6

	// AlreadyExists: creation clashed with an existing identity.
	// Can be mapped to an HTTP 409.
	AlreadyExists Code = -7

	// OutOfMemory: an allocation or capacity budget was exhausted.
	OutOfMemory Code = -8

	// IOError: a local read/write failed.
	IOError Code = -9

	// NetworkError: a generic transport failure outside network_system.
	NetworkError Code = -10

	// RegistryFrozen: a registry refused modification after being frozen.
	RegistryFrozen Code = -11

	// AdapterChainTooDeep: binding an implementation would nest adapters
	// beyond the allowed maximum. Reported at wiring time.
	AdapterChainTooDeep Code = -12

	// InternalError: an unexpected failure with no better classification.
	// Can be mapped to an HTTP 500.
	InternalError Code = -99
)

// thread_system codes (-100 .. -199).
const (
	// Pool (-100 .. -119).
	ThreadPoolFull        = Code(CategoryThread) - 0
	ThreadPoolShutdown    = Code(CategoryThread) - 1
	ThreadPoolNotStarted  = Code(CategoryThread) - 2
	ThreadInvalidPoolSize = Code(CategoryThread) - 3

	// Worker (-120 .. -139).
	ThreadWorkerFailed   = Code(CategoryThread) - 20
	ThreadWorkerNotFound = Code(CategoryThread) - 21
	ThreadWorkerBusy     = Code(CategoryThread) - 22

	// Job (-140 .. -159).
	ThreadJobRejected  = Code(CategoryThread) - 40
	ThreadJobTimeout   = Code(CategoryThread) - 41
	ThreadJobCancelled = Code(CategoryThread) - 42
	ThreadInvalidJob   = Code(CategoryThread) - 43

	// Queue (-160 .. -179).
	ThreadQueueFull    = Code(CategoryThread) - 60
	ThreadQueueEmpty   = Code(CategoryThread) - 61
	ThreadQueueStopped = Code(CategoryThread) - 62
)

// logger_system codes (-200 .. -299).
const (
	// File (-200 .. -219).
	LoggerFileOpenFailed       = Code(CategoryLogger) - 0
	LoggerFileWriteFailed      = Code(CategoryLogger) - 1
	LoggerFileCloseFailed      = Code(CategoryLogger) - 2
	LoggerFileRotationFailed   = Code(CategoryLogger) - 3
	LoggerFilePermissionDenied = Code(CategoryLogger) - 4

	// Writer (-220 .. -239).
	LoggerWriterNotInitialized = Code(CategoryLogger) - 20
	LoggerWriterStopped        = Code(CategoryLogger) - 21
	LoggerWriterFull           = Code(CategoryLogger) - 22
	LoggerAsyncWriterFailed    = Code(CategoryLogger) - 23

	// Format (-240 .. -259).
	LoggerInvalidFormat = Code(CategoryLogger) - 40
	LoggerFormatError   = Code(CategoryLogger) - 41

	// Filter (-260 .. -279).
	LoggerInvalidFilter  = Code(CategoryLogger) - 60
	LoggerFilterRejected = Code(CategoryLogger) - 61
)

// monitoring_system codes (-300 .. -399).
const (
	MonitoringMetricNotFound         = Code(CategoryMonitoring) - 0
	MonitoringInvalidMetricType      = Code(CategoryMonitoring) - 1
	MonitoringMetricCollectionFailed = Code(CategoryMonitoring) - 2

	MonitoringStorageFull  = Code(CategoryMonitoring) - 20
	MonitoringStorageError = Code(CategoryMonitoring) - 21

	MonitoringEventPublishFailed   = Code(CategoryMonitoring) - 40
	MonitoringEventSubscribeFailed = Code(CategoryMonitoring) - 41
	MonitoringInvalidEventType     = Code(CategoryMonitoring) - 42

	MonitoringProfilerNotEnabled = Code(CategoryMonitoring) - 60
	MonitoringProfilerError      = Code(CategoryMonitoring) - 61
)

// container_system codes (-400 .. -499).
const (
	ContainerValueTypeMismatch     = Code(CategoryContainer) - 0
	ContainerInvalidValueType      = Code(CategoryContainer) - 1
	ContainerValueConversionFailed = Code(CategoryContainer) - 2

	ContainerSerializationFailed   = Code(CategoryContainer) - 20
	ContainerDeserializationFailed = Code(CategoryContainer) - 21
	ContainerInvalidFormat         = Code(CategoryContainer) - 22

	ContainerPoolExhausted         = Code(CategoryContainer) - 40
	ContainerAllocationFailed      = Code(CategoryContainer) - 41
	ContainerInvalidAllocationSize = Code(CategoryContainer) - 42

	ContainerKeyNotFound   = Code(CategoryContainer) - 60
	ContainerDuplicateKey  = Code(CategoryContainer) - 61
	ContainerContainerFull = Code(CategoryContainer) - 62
)

// database_system codes (-500 .. -599).
const (
	DatabaseConnectionFailed        = Code(CategoryDatabase) - 0
	DatabaseConnectionLost          = Code(CategoryDatabase) - 1
	DatabaseConnectionTimeout       = Code(CategoryDatabase) - 2
	DatabaseInvalidConnectionString = Code(CategoryDatabase) - 3

	DatabasePoolExhausted = Code(CategoryDatabase) - 20
	DatabasePoolShutdown  = Code(CategoryDatabase) - 21
	DatabasePoolTimeout   = Code(CategoryDatabase) - 22

	DatabaseQueryFailed      = Code(CategoryDatabase) - 40
	DatabaseQuerySyntaxError = Code(CategoryDatabase) - 41
	DatabaseQueryTimeout     = Code(CategoryDatabase) - 42

	DatabaseTransactionFailed     = Code(CategoryDatabase) - 60
	DatabaseTransactionRolledBack = Code(CategoryDatabase) - 61
	DatabaseTransactionTimeout    = Code(CategoryDatabase) - 62
)

// network_system codes (-600 .. -699).
const (
	NetworkConnectionFailed  = Code(CategoryNetwork) - 0
	NetworkConnectionRefused = Code(CategoryNetwork) - 1
	NetworkConnectionTimeout = Code(CategoryNetwork) - 2
	NetworkConnectionClosed  = Code(CategoryNetwork) - 3

	NetworkSessionNotFound = Code(CategoryNetwork) - 20
	NetworkSessionExpired  = Code(CategoryNetwork) - 21
	NetworkInvalidSession  = Code(CategoryNetwork) - 22

	NetworkSendFailed      = Code(CategoryNetwork) - 40
	NetworkReceiveFailed   = Code(CategoryNetwork) - 41
	NetworkMessageTooLarge = Code(CategoryNetwork) - 42

	NetworkServerNotStarted     = Code(CategoryNetwork) - 60
	NetworkServerAlreadyRunning = Code(CategoryNetwork) - 61
	NetworkBindFailed           = Code(CategoryNetwork) - 62
)

type entry struct {
	code    Code
	symbol  string
	message string
}

// entries is the registry source of truth; registry, bySymbol and ordered
// are derived from it in init.
var entries = []entry{
	{Success, "SUCCESS", "Success"},
	{InvalidArgument, "INVALID_ARGUMENT", "Invalid argument"},
	{NotFound, "NOT_FOUND", "Not found"},
	{PermissionDenied, "PERMISSION_DENIED", "Permission denied"},
	{Timeout, "TIMEOUT", "Timeout"},
	{Cancelled, "CANCELLED", "Cancelled"},
	{NotInitialized, "NOT_INITIALIZED", "Not initialized"},
	{AlreadyExists, "ALREADY_EXISTS", "Already exists"},
	{OutOfMemory, "OUT_OF_MEMORY", "Out of memory"},
	{IOError, "IO_ERROR", "I/O error"},
	{NetworkError, "NETWORK_ERROR", "Network error"},
	{RegistryFrozen, "REGISTRY_FROZEN", "Registry is frozen"},
	{AdapterChainTooDeep, "ADAPTER_CHAIN_TOO_DEEP", "Adapter chain too deep"},
	{InternalError, "INTERNAL_ERROR", "Internal error"},

	{ThreadPoolFull, "THREAD_POOL_FULL", "Thread pool full"},
	{ThreadPoolShutdown, "THREAD_POOL_SHUTDOWN", "Thread pool shutdown"},
	{ThreadPoolNotStarted, "THREAD_POOL_NOT_STARTED", "Thread pool not started"},
	{ThreadInvalidPoolSize, "THREAD_INVALID_POOL_SIZE", "Invalid thread pool size"},
	{ThreadWorkerFailed, "THREAD_WORKER_FAILED", "Worker failed"},
	{ThreadWorkerNotFound, "THREAD_WORKER_NOT_FOUND", "Worker not found"},
	{ThreadWorkerBusy, "THREAD_WORKER_BUSY", "Worker busy"},
	{ThreadJobRejected, "THREAD_JOB_REJECTED", "Job rejected"},
	{ThreadJobTimeout, "THREAD_JOB_TIMEOUT", "Job timeout"},
	{ThreadJobCancelled, "THREAD_JOB_CANCELLED", "Job cancelled"},
	{ThreadInvalidJob, "THREAD_INVALID_JOB", "Invalid job"},
	{ThreadQueueFull, "THREAD_QUEUE_FULL", "Job queue full"},
	{ThreadQueueEmpty, "THREAD_QUEUE_EMPTY", "Job queue empty"},
	{ThreadQueueStopped, "THREAD_QUEUE_STOPPED", "Job queue stopped"},

	{LoggerFileOpenFailed, "LOGGER_FILE_OPEN_FAILED", "Failed to open log file"},
	{LoggerFileWriteFailed, "LOGGER_FILE_WRITE_FAILED", "Failed to write to log file"},
	{LoggerFileCloseFailed, "LOGGER_FILE_CLOSE_FAILED", "Failed to close log file"},
	{LoggerFileRotationFailed, "LOGGER_FILE_ROTATION_FAILED", "Log file rotation failed"},
	{LoggerFilePermissionDenied, "LOGGER_FILE_PERMISSION_DENIED", "Log file permission denied"},
	{LoggerWriterNotInitialized, "LOGGER_WRITER_NOT_INITIALIZED", "Log writer not initialized"},
	{LoggerWriterStopped, "LOGGER_WRITER_STOPPED", "Log writer stopped"},
	{LoggerWriterFull, "LOGGER_WRITER_FULL", "Log writer full"},
	{LoggerAsyncWriterFailed, "LOGGER_ASYNC_WRITER_FAILED", "Async log writer failed"},
	{LoggerInvalidFormat, "LOGGER_INVALID_FORMAT", "Invalid log format"},
	{LoggerFormatError, "LOGGER_FORMAT_ERROR", "Log format error"},
	{LoggerInvalidFilter, "LOGGER_INVALID_FILTER", "Invalid log filter"},
	{LoggerFilterRejected, "LOGGER_FILTER_REJECTED", "Log entry rejected by filter"},

	{MonitoringMetricNotFound, "MONITORING_METRIC_NOT_FOUND", "Metric not found"},
	{MonitoringInvalidMetricType, "MONITORING_INVALID_METRIC_TYPE", "Invalid metric type"},
	{MonitoringMetricCollectionFailed, "MONITORING_METRIC_COLLECTION_FAILED", "Metric collection failed"},
	{MonitoringStorageFull, "MONITORING_STORAGE_FULL", "Metric storage full"},
	{MonitoringStorageError, "MONITORING_STORAGE_ERROR", "Metric storage error"},
	{MonitoringEventPublishFailed, "MONITORING_EVENT_PUBLISH_FAILED", "Event publish failed"},
	{MonitoringEventSubscribeFailed, "MONITORING_EVENT_SUBSCRIBE_FAILED", "Event subscribe failed"},
	{MonitoringInvalidEventType, "MONITORING_INVALID_EVENT_TYPE", "Invalid event type"},
	{MonitoringProfilerNotEnabled, "MONITORING_PROFILER_NOT_ENABLED", "Profiler not enabled"},
	{MonitoringProfilerError, "MONITORING_PROFILER_ERROR", "Profiler error"},

	{ContainerValueTypeMismatch, "CONTAINER_VALUE_TYPE_MISMATCH", "Value type mismatch"},
	{ContainerInvalidValueType, "CONTAINER_INVALID_VALUE_TYPE", "Invalid value type"},
	{ContainerValueConversionFailed, "CONTAINER_VALUE_CONVERSION_FAILED", "Value conversion failed"},
	{ContainerSerializationFailed, "CONTAINER_SERIALIZATION_FAILED", "Serialization failed"},
	{ContainerDeserializationFailed, "CONTAINER_DESERIALIZATION_FAILED", "Deserialization failed"},
	{ContainerInvalidFormat, "CONTAINER_INVALID_FORMAT", "Invalid container format"},
	{ContainerPoolExhausted, "CONTAINER_POOL_EXHAUSTED", "Memory pool exhausted"},
	{ContainerAllocationFailed, "CONTAINER_ALLOCATION_FAILED", "Allocation failed"},
	{ContainerInvalidAllocationSize, "CONTAINER_INVALID_ALLOCATION_SIZE", "Invalid allocation size"},
	{ContainerKeyNotFound, "CONTAINER_KEY_NOT_FOUND", "Key not found"},
	{ContainerDuplicateKey, "CONTAINER_DUPLICATE_KEY", "Duplicate key"},
	{ContainerContainerFull, "CONTAINER_FULL", "Container full"},

	{DatabaseConnectionFailed, "DATABASE_CONNECTION_FAILED", "Database connection failed"},
	{DatabaseConnectionLost, "DATABASE_CONNECTION_LOST", "Database connection lost"},
	{DatabaseConnectionTimeout, "DATABASE_CONNECTION_TIMEOUT", "Database connection timeout"},
	{DatabaseInvalidConnectionString, "DATABASE_INVALID_CONNECTION_STRING", "Invalid connection string"},
	{DatabasePoolExhausted, "DATABASE_POOL_EXHAUSTED", "Connection pool exhausted"},
	{DatabasePoolShutdown, "DATABASE_POOL_SHUTDOWN", "Connection pool shutdown"},
	{DatabasePoolTimeout, "DATABASE_POOL_TIMEOUT", "Connection pool timeout"},
	{DatabaseQueryFailed, "DATABASE_QUERY_FAILED", "Database query failed"},
	{DatabaseQuerySyntaxError, "DATABASE_QUERY_SYNTAX_ERROR", "Query syntax error"},
	{DatabaseQueryTimeout, "DATABASE_QUERY_TIMEOUT", "Query timeout"},
	{DatabaseTransactionFailed, "DATABASE_TRANSACTION_FAILED", "Transaction failed"},
	{DatabaseTransactionRolledBack, "DATABASE_TRANSACTION_ROLLED_BACK", "Transaction rolled back"},
	{DatabaseTransactionTimeout, "DATABASE_TRANSACTION_TIMEOUT", "Transaction timeout"},

	{NetworkConnectionFailed, "NETWORK_CONNECTION_FAILED", "Network connection failed"},
	{NetworkConnectionRefused, "NETWORK_CONNECTION_REFUSED", "Connection refused"},
	{NetworkConnectionTimeout, "NETWORK_CONNECTION_TIMEOUT", "Connection timeout"},
	{NetworkConnectionClosed, "NETWORK_CONNECTION_CLOSED", "Connection closed"},
	{NetworkSessionNotFound, "NETWORK_SESSION_NOT_FOUND", "Session not found"},
	{NetworkSessionExpired, "NETWORK_SESSION_EXPIRED", "Session expired"},
	{NetworkInvalidSession, "NETWORK_INVALID_SESSION", "Invalid session"},
	{NetworkSendFailed, "NETWORK_SEND_FAILED", "Network send failed"},
	{NetworkReceiveFailed, "NETWORK_RECEIVE_FAILED", "Network receive failed"},
	{NetworkMessageTooLarge, "NETWORK_MESSAGE_TOO_LARGE", "Message too large"},
	{NetworkServerNotStarted, "NETWORK_SERVER_NOT_STARTED", "Server not started"},
	{NetworkServerAlreadyRunning, "NETWORK_SERVER_ALREADY_RUNNING", "Server already running"},
	{NetworkBindFailed, "NETWORK_BIND_FAILED", "Bind failed"},
}

var (
	registry = make(map[Code]entry, len(entries))
	bySymbol = make(map[string]Code, len(entries))
	ordered  = make([]Code, 0, len(entries))
)

func init() {
	for _, e := range entries {
		if _, dup := registry[e.code]; dup {
			panic("common: duplicate code " + e.symbol)
		}
		registry[e.code] = e
		bySymbol[e.symbol] = e.code
		ordered = append(ordered, e.code)
	}
}
