package constants

// RunStatus is the canonical status for rows in job_run.
type RunStatus string

// Stable values (store these exact strings in DB).
const (
	RunStatusPending            RunStatus = "PENDING"             // created, not yet submitted
	RunStatusInProgress         RunStatus = "IN_PROGRESS"         // submitted, tasks executing
	RunStatusCompleted          RunStatus = "COMPLETED"           // all tasks succeeded
	RunStatusPartiallyCompleted RunStatus = "PARTIALLY_COMPLETED" // mixed task outcomes
	RunStatusFailed             RunStatus = "FAILED"              // all tasks failed or bootstrap errored
	RunStatusCancelled          RunStatus = "CANCELLED"           // cancelled by caller
)

// RunStatuses holds the allowed values for the job_run status field.
var RunStatuses = []string{
	string(RunStatusPending),
	string(RunStatusInProgress),
	string(RunStatusCompleted),
	string(RunStatusPartiallyCompleted),
	string(RunStatusFailed),
	string(RunStatusCancelled),
}

// IsTerminalRunStatus reports whether a run status admits no further transitions.
func IsTerminalRunStatus(s RunStatus) bool {
	switch s {
	case RunStatusCompleted, RunStatusPartiallyCompleted, RunStatusFailed, RunStatusCancelled:
		return true
	}
	return false
}

// ConfigStep is the configuration wizard position of a run.
type ConfigStep string

const (
	ConfigStepUpload    ConfigStep = "UPLOAD"
	ConfigStepFields    ConfigStep = "FIELDS"
	ConfigStepReview    ConfigStep = "REVIEW"
	ConfigStepSubmitted ConfigStep = "SUBMITTED"
)

// ConfigSteps holds the allowed values for the job_run config_step field,
// in wizard order.
var ConfigSteps = []string{
	string(ConfigStepUpload),
	string(ConfigStepFields),
	string(ConfigStepReview),
	string(ConfigStepSubmitted),
}

// ConfigStepIndex returns the position of a step in the wizard, or -1.
func ConfigStepIndex(s ConfigStep) int {
	for i, v := range ConfigSteps {
		if v == string(s) {
			return i
		}
	}
	return -1
}

// FileStatus is the canonical status for rows in source_file.
type FileStatus string

const (
	FileStatusUploading FileStatus = "UPLOADING"
	FileStatusUploaded  FileStatus = "UPLOADED"
	FileStatusUnpacking FileStatus = "UNPACKING"
	FileStatusUnpacked  FileStatus = "UNPACKED"
	FileStatusReady     FileStatus = "READY"
	FileStatusFailed    FileStatus = "FAILED"
	FileStatusDeleted   FileStatus = "DELETED"
)

var FileStatuses = []string{
	string(FileStatusUploading),
	string(FileStatusUploaded),
	string(FileStatusUnpacking),
	string(FileStatusUnpacked),
	string(FileStatusReady),
	string(FileStatusFailed),
	string(FileStatusDeleted),
}

// IsTerminalFileStatus reports whether a file reached the end of its state machine.
func IsTerminalFileStatus(s FileStatus) bool {
	switch s {
	case FileStatusUnpacked, FileStatusReady, FileStatusFailed, FileStatusDeleted:
		return true
	}
	return false
}

// FileOrigin tags where a source file came from.
type FileOrigin string

const (
	OriginDirect        FileOrigin = "DIRECT"
	OriginExternalDrive FileOrigin = "EXTERNAL_DRIVE"
	OriginExternalMail  FileOrigin = "EXTERNAL_MAIL"
	OriginArchiveMember FileOrigin = "ARCHIVE_MEMBER"
)

var FileOrigins = []string{
	string(OriginDirect),
	string(OriginExternalDrive),
	string(OriginExternalMail),
	string(OriginArchiveMember),
}

// TaskStatus is the canonical status for rows in extraction_task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusFailed     TaskStatus = "FAILED"
)

var TaskStatuses = []string{
	string(TaskStatusPending),
	string(TaskStatusProcessing),
	string(TaskStatusCompleted),
	string(TaskStatusFailed),
}

// IsTerminalTaskStatus reports whether a task reached a terminal outcome.
func IsTerminalTaskStatus(s TaskStatus) bool {
	return s == TaskStatusCompleted || s == TaskStatusFailed
}

// ProcessingMode decides how files in a folder map to extraction tasks.
type ProcessingMode string

const (
	ModeIndividual ProcessingMode = "INDIVIDUAL" // one task per file
	ModeCombined   ProcessingMode = "COMBINED"   // one task for the whole folder
)

var ProcessingModes = []string{
	string(ModeIndividual),
	string(ModeCombined),
}

// OperationState is the canonical state for rows in operation.
type OperationState string

const (
	OperationAccepted  OperationState = "ACCEPTED"
	OperationRunning   OperationState = "RUNNING"
	OperationDone      OperationState = "DONE"
	OperationError     OperationState = "ERROR"
	OperationCancelled OperationState = "CANCELLED"
)

var OperationStates = []string{
	string(OperationAccepted),
	string(OperationRunning),
	string(OperationDone),
	string(OperationError),
	string(OperationCancelled),
}

// IsTerminalOperationState reports whether callers may stop polling.
func IsTerminalOperationState(s OperationState) bool {
	switch s {
	case OperationDone, OperationError, OperationCancelled:
		return true
	}
	return false
}

// OperationKind names the unit of work an operation tracks.
type OperationKind string

const (
	OperationKindImport OperationKind = "IMPORT"
	OperationKindExport OperationKind = "EXPORT"
)

var OperationKinds = []string{
	string(OperationKindImport),
	string(OperationKindExport),
}

// ExportDestination is where an export artifact is delivered.
type ExportDestination string

const (
	DestinationDownload      ExportDestination = "DIRECT_DOWNLOAD"
	DestinationExternalDrive ExportDestination = "EXTERNAL_DRIVE"
	DestinationExternalMail  ExportDestination = "EXTERNAL_MAIL"
)

var ExportDestinations = []string{
	string(DestinationDownload),
	string(DestinationExternalDrive),
	string(DestinationExternalMail),
}

// ExportFileKind is the artifact format.
type ExportFileKind string

const (
	ExportCSV  ExportFileKind = "CSV"
	ExportXLSX ExportFileKind = "XLSX"
)

var ExportFileKinds = []string{
	string(ExportCSV),
	string(ExportXLSX),
}
