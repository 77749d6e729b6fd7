// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: tablelift/v1/tablelift.proto

package v1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Job struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	TemplateId    string                 `protobuf:"bytes,3,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{0}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Job) GetTemplateId() string {
	if x != nil {
		return x.TemplateId
	}
	return ""
}

func (x *Job) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type FieldSpec struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Type          string                 `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"`
	Prompt        string                 `protobuf:"bytes,3,opt,name=prompt,proto3" json:"prompt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FieldSpec) Reset() {
	*x = FieldSpec{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldSpec) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldSpec) ProtoMessage() {}

func (x *FieldSpec) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldSpec.ProtoReflect.Descriptor instead.
func (*FieldSpec) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{1}
}

func (x *FieldSpec) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *FieldSpec) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *FieldSpec) GetPrompt() string {
	if x != nil {
		return x.Prompt
	}
	return ""
}

type TaskDefinition struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Folder        string                 `protobuf:"bytes,1,opt,name=folder,proto3" json:"folder,omitempty"`
	Mode          string                 `protobuf:"bytes,2,opt,name=mode,proto3" json:"mode,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TaskDefinition) Reset() {
	*x = TaskDefinition{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TaskDefinition) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TaskDefinition) ProtoMessage() {}

func (x *TaskDefinition) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TaskDefinition.ProtoReflect.Descriptor instead.
func (*TaskDefinition) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{2}
}

func (x *TaskDefinition) GetFolder() string {
	if x != nil {
		return x.Folder
	}
	return ""
}

func (x *TaskDefinition) GetMode() string {
	if x != nil {
		return x.Mode
	}
	return ""
}

type JobRun struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	JobId          string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Status         string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	ConfigStep     string                 `protobuf:"bytes,4,opt,name=config_step,json=configStep,proto3" json:"config_step,omitempty"`
	Version        int32                  `protobuf:"varint,5,opt,name=version,proto3" json:"version,omitempty"`
	Fields         []*FieldSpec           `protobuf:"bytes,6,rep,name=fields,proto3" json:"fields,omitempty"`
	TaskDefs       []*TaskDefinition      `protobuf:"bytes,7,rep,name=task_defs,json=taskDefs,proto3" json:"task_defs,omitempty"`
	ClonedFromId   string                 `protobuf:"bytes,8,opt,name=cloned_from_id,json=clonedFromId,proto3" json:"cloned_from_id,omitempty"`
	TasksTotal     int32                  `protobuf:"varint,9,opt,name=tasks_total,json=tasksTotal,proto3" json:"tasks_total,omitempty"`
	TasksCompleted int32                  `protobuf:"varint,10,opt,name=tasks_completed,json=tasksCompleted,proto3" json:"tasks_completed,omitempty"`
	TasksFailed    int32                  `protobuf:"varint,11,opt,name=tasks_failed,json=tasksFailed,proto3" json:"tasks_failed,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,12,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	CompletedAt    string                 `protobuf:"bytes,13,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *JobRun) Reset() {
	*x = JobRun{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JobRun) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JobRun) ProtoMessage() {}

func (x *JobRun) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JobRun.ProtoReflect.Descriptor instead.
func (*JobRun) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{3}
}

func (x *JobRun) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *JobRun) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *JobRun) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *JobRun) GetConfigStep() string {
	if x != nil {
		return x.ConfigStep
	}
	return ""
}

func (x *JobRun) GetVersion() int32 {
	if x != nil {
		return x.Version
	}
	return 0
}

func (x *JobRun) GetFields() []*FieldSpec {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *JobRun) GetTaskDefs() []*TaskDefinition {
	if x != nil {
		return x.TaskDefs
	}
	return nil
}

func (x *JobRun) GetClonedFromId() string {
	if x != nil {
		return x.ClonedFromId
	}
	return ""
}

func (x *JobRun) GetTasksTotal() int32 {
	if x != nil {
		return x.TasksTotal
	}
	return 0
}

func (x *JobRun) GetTasksCompleted() int32 {
	if x != nil {
		return x.TasksCompleted
	}
	return 0
}

func (x *JobRun) GetTasksFailed() int32 {
	if x != nil {
		return x.TasksFailed
	}
	return 0
}

func (x *JobRun) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *JobRun) GetCompletedAt() string {
	if x != nil {
		return x.CompletedAt
	}
	return ""
}

type SourceFile struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	RunId          string                 `protobuf:"bytes,2,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	Filename       string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	FileSize       int64                  `protobuf:"varint,5,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,6,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	Status         string                 `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`
	Origin         string                 `protobuf:"bytes,8,opt,name=origin,proto3" json:"origin,omitempty"`
	ParentId       string                 `protobuf:"bytes,9,opt,name=parent_id,json=parentId,proto3" json:"parent_id,omitempty"`
	Error          string                 `protobuf:"bytes,10,opt,name=error,proto3" json:"error,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,11,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *SourceFile) Reset() {
	*x = SourceFile{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SourceFile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SourceFile) ProtoMessage() {}

func (x *SourceFile) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SourceFile.ProtoReflect.Descriptor instead.
func (*SourceFile) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{4}
}

func (x *SourceFile) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SourceFile) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *SourceFile) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *SourceFile) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *SourceFile) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *SourceFile) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *SourceFile) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *SourceFile) GetOrigin() string {
	if x != nil {
		return x.Origin
	}
	return ""
}

func (x *SourceFile) GetParentId() string {
	if x != nil {
		return x.ParentId
	}
	return ""
}

func (x *SourceFile) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

func (x *SourceFile) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

type Operation struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Kind          string                 `protobuf:"bytes,2,opt,name=kind,proto3" json:"kind,omitempty"`
	RunId         string                 `protobuf:"bytes,3,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	State         string                 `protobuf:"bytes,4,opt,name=state,proto3" json:"state,omitempty"`
	ProgressPct   int32                  `protobuf:"varint,5,opt,name=progress_pct,json=progressPct,proto3" json:"progress_pct,omitempty"`
	Total         int32                  `protobuf:"varint,6,opt,name=total,proto3" json:"total,omitempty"`
	Completed     int32                  `protobuf:"varint,7,opt,name=completed,proto3" json:"completed,omitempty"`
	Failed        int32                  `protobuf:"varint,8,opt,name=failed,proto3" json:"failed,omitempty"`
	ResultJson    string                 `protobuf:"bytes,9,opt,name=result_json,json=resultJson,proto3" json:"result_json,omitempty"`
	Error         string                 `protobuf:"bytes,10,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Operation) Reset() {
	*x = Operation{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Operation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Operation) ProtoMessage() {}

func (x *Operation) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Operation.ProtoReflect.Descriptor instead.
func (*Operation) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{5}
}

func (x *Operation) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Operation) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *Operation) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *Operation) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *Operation) GetProgressPct() int32 {
	if x != nil {
		return x.ProgressPct
	}
	return 0
}

func (x *Operation) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *Operation) GetCompleted() int32 {
	if x != nil {
		return x.Completed
	}
	return 0
}

func (x *Operation) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *Operation) GetResultJson() string {
	if x != nil {
		return x.ResultJson
	}
	return ""
}

func (x *Operation) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type Export struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	RunId         string                 `protobuf:"bytes,2,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	OperationId   string                 `protobuf:"bytes,3,opt,name=operation_id,json=operationId,proto3" json:"operation_id,omitempty"`
	Destination   string                 `protobuf:"bytes,4,opt,name=destination,proto3" json:"destination,omitempty"`
	FileKind      string                 `protobuf:"bytes,5,opt,name=file_kind,json=fileKind,proto3" json:"file_kind,omitempty"`
	State         string                 `protobuf:"bytes,6,opt,name=state,proto3" json:"state,omitempty"`
	ExternalRef   string                 `protobuf:"bytes,7,opt,name=external_ref,json=externalRef,proto3" json:"external_ref,omitempty"`
	Error         string                 `protobuf:"bytes,8,opt,name=error,proto3" json:"error,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Export) Reset() {
	*x = Export{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Export) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Export) ProtoMessage() {}

func (x *Export) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Export.ProtoReflect.Descriptor instead.
func (*Export) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{6}
}

func (x *Export) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Export) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *Export) GetOperationId() string {
	if x != nil {
		return x.OperationId
	}
	return ""
}

func (x *Export) GetDestination() string {
	if x != nil {
		return x.Destination
	}
	return ""
}

func (x *Export) GetFileKind() string {
	if x != nil {
		return x.FileKind
	}
	return ""
}

func (x *Export) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *Export) GetExternalRef() string {
	if x != nil {
		return x.ExternalRef
	}
	return ""
}

func (x *Export) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

func (x *Export) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ProgressSnapshot struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	Total         int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	Completed     int32                  `protobuf:"varint,3,opt,name=completed,proto3" json:"completed,omitempty"`
	Failed        int32                  `protobuf:"varint,4,opt,name=failed,proto3" json:"failed,omitempty"`
	Terminal      bool                   `protobuf:"varint,5,opt,name=terminal,proto3" json:"terminal,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProgressSnapshot) Reset() {
	*x = ProgressSnapshot{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProgressSnapshot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProgressSnapshot) ProtoMessage() {}

func (x *ProgressSnapshot) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProgressSnapshot.ProtoReflect.Descriptor instead.
func (*ProgressSnapshot) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{7}
}

func (x *ProgressSnapshot) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *ProgressSnapshot) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *ProgressSnapshot) GetCompleted() int32 {
	if x != nil {
		return x.Completed
	}
	return 0
}

func (x *ProgressSnapshot) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *ProgressSnapshot) GetTerminal() bool {
	if x != nil {
		return x.Terminal
	}
	return false
}

func (x *ProgressSnapshot) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	TemplateId    string                 `protobuf:"bytes,2,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateJobRequest) Reset() {
	*x = CreateJobRequest{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateJobRequest) ProtoMessage() {}

func (x *CreateJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateJobRequest.ProtoReflect.Descriptor instead.
func (*CreateJobRequest) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{8}
}

func (x *CreateJobRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateJobRequest) GetTemplateId() string {
	if x != nil {
		return x.TemplateId
	}
	return ""
}

type CreateJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	Run           *JobRun                `protobuf:"bytes,2,opt,name=run,proto3" json:"run,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateJobResponse) Reset() {
	*x = CreateJobResponse{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateJobResponse) ProtoMessage() {}

func (x *CreateJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateJobResponse.ProtoReflect.Descriptor instead.
func (*CreateJobResponse) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{9}
}

func (x *CreateJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

func (x *CreateJobResponse) GetRun() *JobRun {
	if x != nil {
		return x.Run
	}
	return nil
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{10}
}

func (x *GetJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{11}
}

func (x *GetJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{12}
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*Job                 `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{13}
}

func (x *ListJobsResponse) GetJobs() []*Job {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type DeleteJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteJobRequest) Reset() {
	*x = DeleteJobRequest{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteJobRequest) ProtoMessage() {}

func (x *DeleteJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteJobRequest.ProtoReflect.Descriptor instead.
func (*DeleteJobRequest) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{14}
}

func (x *DeleteJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type DeleteJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteJobResponse) Reset() {
	*x = DeleteJobResponse{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteJobResponse) ProtoMessage() {}

func (x *DeleteJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteJobResponse.ProtoReflect.Descriptor instead.
func (*DeleteJobResponse) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{15}
}

type CreateRunRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	JobId          string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	CloneFromRunId string                 `protobuf:"bytes,2,opt,name=clone_from_run_id,json=cloneFromRunId,proto3" json:"clone_from_run_id,omitempty"`
	AppendResults  bool                   `protobuf:"varint,3,opt,name=append_results,json=appendResults,proto3" json:"append_results,omitempty"`
	Supersede      bool                   `protobuf:"varint,4,opt,name=supersede,proto3" json:"supersede,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateRunRequest) Reset() {
	*x = CreateRunRequest{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateRunRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateRunRequest) ProtoMessage() {}

func (x *CreateRunRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateRunRequest.ProtoReflect.Descriptor instead.
func (*CreateRunRequest) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{16}
}

func (x *CreateRunRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *CreateRunRequest) GetCloneFromRunId() string {
	if x != nil {
		return x.CloneFromRunId
	}
	return ""
}

func (x *CreateRunRequest) GetAppendResults() bool {
	if x != nil {
		return x.AppendResults
	}
	return false
}

func (x *CreateRunRequest) GetSupersede() bool {
	if x != nil {
		return x.Supersede
	}
	return false
}

type CreateRunResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Run           *JobRun                `protobuf:"bytes,1,opt,name=run,proto3" json:"run,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateRunResponse) Reset() {
	*x = CreateRunResponse{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateRunResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateRunResponse) ProtoMessage() {}

func (x *CreateRunResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateRunResponse.ProtoReflect.Descriptor instead.
func (*CreateRunResponse) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{17}
}

func (x *CreateRunResponse) GetRun() *JobRun {
	if x != nil {
		return x.Run
	}
	return nil
}

type GetRunRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRunRequest) Reset() {
	*x = GetRunRequest{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRunRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRunRequest) ProtoMessage() {}

func (x *GetRunRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRunRequest.ProtoReflect.Descriptor instead.
func (*GetRunRequest) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{18}
}

func (x *GetRunRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

type GetRunResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Run           *JobRun                `protobuf:"bytes,1,opt,name=run,proto3" json:"run,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRunResponse) Reset() {
	*x = GetRunResponse{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRunResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRunResponse) ProtoMessage() {}

func (x *GetRunResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRunResponse.ProtoReflect.Descriptor instead.
func (*GetRunResponse) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{19}
}

func (x *GetRunResponse) GetRun() *JobRun {
	if x != nil {
		return x.Run
	}
	return nil
}

type ListRunsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRunsRequest) Reset() {
	*x = ListRunsRequest{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRunsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRunsRequest) ProtoMessage() {}

func (x *ListRunsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRunsRequest.ProtoReflect.Descriptor instead.
func (*ListRunsRequest) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{20}
}

func (x *ListRunsRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type ListRunsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Runs          []*JobRun              `protobuf:"bytes,1,rep,name=runs,proto3" json:"runs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRunsResponse) Reset() {
	*x = ListRunsResponse{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRunsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRunsResponse) ProtoMessage() {}

func (x *ListRunsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRunsResponse.ProtoReflect.Descriptor instead.
func (*ListRunsResponse) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{21}
}

func (x *ListRunsResponse) GetRuns() []*JobRun {
	if x != nil {
		return x.Runs
	}
	return nil
}

type AdvanceConfigStepRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	RunId           string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	TargetStep      string                 `protobuf:"bytes,2,opt,name=target_step,json=targetStep,proto3" json:"target_step,omitempty"`
	ExpectedVersion int32                  `protobuf:"varint,3,opt,name=expected_version,json=expectedVersion,proto3" json:"expected_version,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *AdvanceConfigStepRequest) Reset() {
	*x = AdvanceConfigStepRequest{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AdvanceConfigStepRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AdvanceConfigStepRequest) ProtoMessage() {}

func (x *AdvanceConfigStepRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AdvanceConfigStepRequest.ProtoReflect.Descriptor instead.
func (*AdvanceConfigStepRequest) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{22}
}

func (x *AdvanceConfigStepRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *AdvanceConfigStepRequest) GetTargetStep() string {
	if x != nil {
		return x.TargetStep
	}
	return ""
}

func (x *AdvanceConfigStepRequest) GetExpectedVersion() int32 {
	if x != nil {
		return x.ExpectedVersion
	}
	return 0
}

type ConfigureFieldsRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	RunId           string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	Fields          []*FieldSpec           `protobuf:"bytes,2,rep,name=fields,proto3" json:"fields,omitempty"`
	TaskDefs        []*TaskDefinition      `protobuf:"bytes,3,rep,name=task_defs,json=taskDefs,proto3" json:"task_defs,omitempty"`
	ExpectedVersion int32                  `protobuf:"varint,4,opt,name=expected_version,json=expectedVersion,proto3" json:"expected_version,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ConfigureFieldsRequest) Reset() {
	*x = ConfigureFieldsRequest{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfigureFieldsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfigureFieldsRequest) ProtoMessage() {}

func (x *ConfigureFieldsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfigureFieldsRequest.ProtoReflect.Descriptor instead.
func (*ConfigureFieldsRequest) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{23}
}

func (x *ConfigureFieldsRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *ConfigureFieldsRequest) GetFields() []*FieldSpec {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *ConfigureFieldsRequest) GetTaskDefs() []*TaskDefinition {
	if x != nil {
		return x.TaskDefs
	}
	return nil
}

func (x *ConfigureFieldsRequest) GetExpectedVersion() int32 {
	if x != nil {
		return x.ExpectedVersion
	}
	return 0
}

type SubmitRunRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	RunId           string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	ExpectedVersion int32                  `protobuf:"varint,2,opt,name=expected_version,json=expectedVersion,proto3" json:"expected_version,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *SubmitRunRequest) Reset() {
	*x = SubmitRunRequest{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitRunRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitRunRequest) ProtoMessage() {}

func (x *SubmitRunRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitRunRequest.ProtoReflect.Descriptor instead.
func (*SubmitRunRequest) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{24}
}

func (x *SubmitRunRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *SubmitRunRequest) GetExpectedVersion() int32 {
	if x != nil {
		return x.ExpectedVersion
	}
	return 0
}

type CancelRunRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	RunId           string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	ExpectedVersion int32                  `protobuf:"varint,2,opt,name=expected_version,json=expectedVersion,proto3" json:"expected_version,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CancelRunRequest) Reset() {
	*x = CancelRunRequest{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelRunRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelRunRequest) ProtoMessage() {}

func (x *CancelRunRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelRunRequest.ProtoReflect.Descriptor instead.
func (*CancelRunRequest) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{25}
}

func (x *CancelRunRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *CancelRunRequest) GetExpectedVersion() int32 {
	if x != nil {
		return x.ExpectedVersion
	}
	return 0
}

type BeginUploadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	Filenames     []string               `protobuf:"bytes,2,rep,name=filenames,proto3" json:"filenames,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BeginUploadRequest) Reset() {
	*x = BeginUploadRequest{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BeginUploadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BeginUploadRequest) ProtoMessage() {}

func (x *BeginUploadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BeginUploadRequest.ProtoReflect.Descriptor instead.
func (*BeginUploadRequest) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{26}
}

func (x *BeginUploadRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *BeginUploadRequest) GetFilenames() []string {
	if x != nil {
		return x.Filenames
	}
	return nil
}

type UploadTarget struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	File          *SourceFile            `protobuf:"bytes,1,opt,name=file,proto3" json:"file,omitempty"`
	UploadPath    string                 `protobuf:"bytes,2,opt,name=upload_path,json=uploadPath,proto3" json:"upload_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadTarget) Reset() {
	*x = UploadTarget{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadTarget) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadTarget) ProtoMessage() {}

func (x *UploadTarget) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadTarget.ProtoReflect.Descriptor instead.
func (*UploadTarget) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{27}
}

func (x *UploadTarget) GetFile() *SourceFile {
	if x != nil {
		return x.File
	}
	return nil
}

func (x *UploadTarget) GetUploadPath() string {
	if x != nil {
		return x.UploadPath
	}
	return ""
}

type BeginUploadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Targets       []*UploadTarget        `protobuf:"bytes,1,rep,name=targets,proto3" json:"targets,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BeginUploadResponse) Reset() {
	*x = BeginUploadResponse{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BeginUploadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BeginUploadResponse) ProtoMessage() {}

func (x *BeginUploadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BeginUploadResponse.ProtoReflect.Descriptor instead.
func (*BeginUploadResponse) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{28}
}

func (x *BeginUploadResponse) GetTargets() []*UploadTarget {
	if x != nil {
		return x.Targets
	}
	return nil
}

type ConfirmUploadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileId        string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmUploadRequest) Reset() {
	*x = ConfirmUploadRequest{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmUploadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmUploadRequest) ProtoMessage() {}

func (x *ConfirmUploadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmUploadRequest.ProtoReflect.Descriptor instead.
func (*ConfirmUploadRequest) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{29}
}

func (x *ConfirmUploadRequest) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

type ConfirmUploadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	File          *SourceFile            `protobuf:"bytes,1,opt,name=file,proto3" json:"file,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmUploadResponse) Reset() {
	*x = ConfirmUploadResponse{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmUploadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmUploadResponse) ProtoMessage() {}

func (x *ConfirmUploadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmUploadResponse.ProtoReflect.Descriptor instead.
func (*ConfirmUploadResponse) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{30}
}

func (x *ConfirmUploadResponse) GetFile() *SourceFile {
	if x != nil {
		return x.File
	}
	return nil
}

type ImportFromSourceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	Origin        string                 `protobuf:"bytes,2,opt,name=origin,proto3" json:"origin,omitempty"`
	Refs          []string               `protobuf:"bytes,3,rep,name=refs,proto3" json:"refs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportFromSourceRequest) Reset() {
	*x = ImportFromSourceRequest{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportFromSourceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportFromSourceRequest) ProtoMessage() {}

func (x *ImportFromSourceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportFromSourceRequest.ProtoReflect.Descriptor instead.
func (*ImportFromSourceRequest) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{31}
}

func (x *ImportFromSourceRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *ImportFromSourceRequest) GetOrigin() string {
	if x != nil {
		return x.Origin
	}
	return ""
}

func (x *ImportFromSourceRequest) GetRefs() []string {
	if x != nil {
		return x.Refs
	}
	return nil
}

type ImportFromSourceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Operation     *Operation             `protobuf:"bytes,1,opt,name=operation,proto3" json:"operation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportFromSourceResponse) Reset() {
	*x = ImportFromSourceResponse{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportFromSourceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportFromSourceResponse) ProtoMessage() {}

func (x *ImportFromSourceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportFromSourceResponse.ProtoReflect.Descriptor instead.
func (*ImportFromSourceResponse) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{32}
}

func (x *ImportFromSourceResponse) GetOperation() *Operation {
	if x != nil {
		return x.Operation
	}
	return nil
}

type RemoveFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileId        string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveFileRequest) Reset() {
	*x = RemoveFileRequest{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveFileRequest) ProtoMessage() {}

func (x *RemoveFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveFileRequest.ProtoReflect.Descriptor instead.
func (*RemoveFileRequest) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{33}
}

func (x *RemoveFileRequest) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

type RemoveFileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveFileResponse) Reset() {
	*x = RemoveFileResponse{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveFileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveFileResponse) ProtoMessage() {}

func (x *RemoveFileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveFileResponse.ProtoReflect.Descriptor instead.
func (*RemoveFileResponse) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{34}
}

type ListFilesRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	RunId          string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	IncludeDeleted bool                   `protobuf:"varint,2,opt,name=include_deleted,json=includeDeleted,proto3" json:"include_deleted,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ListFilesRequest) Reset() {
	*x = ListFilesRequest{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFilesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFilesRequest) ProtoMessage() {}

func (x *ListFilesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFilesRequest.ProtoReflect.Descriptor instead.
func (*ListFilesRequest) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{35}
}

func (x *ListFilesRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *ListFilesRequest) GetIncludeDeleted() bool {
	if x != nil {
		return x.IncludeDeleted
	}
	return false
}

type ListFilesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Files         []*SourceFile          `protobuf:"bytes,1,rep,name=files,proto3" json:"files,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFilesResponse) Reset() {
	*x = ListFilesResponse{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFilesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFilesResponse) ProtoMessage() {}

func (x *ListFilesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFilesResponse.ProtoReflect.Descriptor instead.
func (*ListFilesResponse) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{36}
}

func (x *ListFilesResponse) GetFiles() []*SourceFile {
	if x != nil {
		return x.Files
	}
	return nil
}

type PollProgressRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PollProgressRequest) Reset() {
	*x = PollProgressRequest{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PollProgressRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PollProgressRequest) ProtoMessage() {}

func (x *PollProgressRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PollProgressRequest.ProtoReflect.Descriptor instead.
func (*PollProgressRequest) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{37}
}

func (x *PollProgressRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

type SubscribeProgressRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubscribeProgressRequest) Reset() {
	*x = SubscribeProgressRequest{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubscribeProgressRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubscribeProgressRequest) ProtoMessage() {}

func (x *SubscribeProgressRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubscribeProgressRequest.ProtoReflect.Descriptor instead.
func (*SubscribeProgressRequest) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{38}
}

func (x *SubscribeProgressRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

type GetOperationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OperationId   string                 `protobuf:"bytes,1,opt,name=operation_id,json=operationId,proto3" json:"operation_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOperationRequest) Reset() {
	*x = GetOperationRequest{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOperationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOperationRequest) ProtoMessage() {}

func (x *GetOperationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOperationRequest.ProtoReflect.Descriptor instead.
func (*GetOperationRequest) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{39}
}

func (x *GetOperationRequest) GetOperationId() string {
	if x != nil {
		return x.OperationId
	}
	return ""
}

type GetOperationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Operation     *Operation             `protobuf:"bytes,1,opt,name=operation,proto3" json:"operation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOperationResponse) Reset() {
	*x = GetOperationResponse{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOperationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOperationResponse) ProtoMessage() {}

func (x *GetOperationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOperationResponse.ProtoReflect.Descriptor instead.
func (*GetOperationResponse) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{40}
}

func (x *GetOperationResponse) GetOperation() *Operation {
	if x != nil {
		return x.Operation
	}
	return nil
}

type RequestExportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	FileKind      string                 `protobuf:"bytes,2,opt,name=file_kind,json=fileKind,proto3" json:"file_kind,omitempty"`
	Destination   string                 `protobuf:"bytes,3,opt,name=destination,proto3" json:"destination,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RequestExportRequest) Reset() {
	*x = RequestExportRequest{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RequestExportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RequestExportRequest) ProtoMessage() {}

func (x *RequestExportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RequestExportRequest.ProtoReflect.Descriptor instead.
func (*RequestExportRequest) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{41}
}

func (x *RequestExportRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *RequestExportRequest) GetFileKind() string {
	if x != nil {
		return x.FileKind
	}
	return ""
}

func (x *RequestExportRequest) GetDestination() string {
	if x != nil {
		return x.Destination
	}
	return ""
}

type RequestExportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Export        *Export                `protobuf:"bytes,1,opt,name=export,proto3" json:"export,omitempty"`
	Operation     *Operation             `protobuf:"bytes,2,opt,name=operation,proto3" json:"operation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RequestExportResponse) Reset() {
	*x = RequestExportResponse{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[42]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RequestExportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RequestExportResponse) ProtoMessage() {}

func (x *RequestExportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[42]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RequestExportResponse.ProtoReflect.Descriptor instead.
func (*RequestExportResponse) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{42}
}

func (x *RequestExportResponse) GetExport() *Export {
	if x != nil {
		return x.Export
	}
	return nil
}

func (x *RequestExportResponse) GetOperation() *Operation {
	if x != nil {
		return x.Operation
	}
	return nil
}

type GetExportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ExportId      string                 `protobuf:"bytes,1,opt,name=export_id,json=exportId,proto3" json:"export_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExportRequest) Reset() {
	*x = GetExportRequest{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[43]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExportRequest) ProtoMessage() {}

func (x *GetExportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[43]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExportRequest.ProtoReflect.Descriptor instead.
func (*GetExportRequest) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{43}
}

func (x *GetExportRequest) GetExportId() string {
	if x != nil {
		return x.ExportId
	}
	return ""
}

type GetExportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Export        *Export                `protobuf:"bytes,1,opt,name=export,proto3" json:"export,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExportResponse) Reset() {
	*x = GetExportResponse{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[44]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExportResponse) ProtoMessage() {}

func (x *GetExportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[44]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExportResponse.ProtoReflect.Descriptor instead.
func (*GetExportResponse) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{44}
}

func (x *GetExportResponse) GetExport() *Export {
	if x != nil {
		return x.Export
	}
	return nil
}

type GetExportDownloadTargetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ExportId      string                 `protobuf:"bytes,1,opt,name=export_id,json=exportId,proto3" json:"export_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExportDownloadTargetRequest) Reset() {
	*x = GetExportDownloadTargetRequest{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[45]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExportDownloadTargetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExportDownloadTargetRequest) ProtoMessage() {}

func (x *GetExportDownloadTargetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[45]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExportDownloadTargetRequest.ProtoReflect.Descriptor instead.
func (*GetExportDownloadTargetRequest) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{45}
}

func (x *GetExportDownloadTargetRequest) GetExportId() string {
	if x != nil {
		return x.ExportId
	}
	return ""
}

type GetExportDownloadTargetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExportDownloadTargetResponse) Reset() {
	*x = GetExportDownloadTargetResponse{}
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[46]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExportDownloadTargetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExportDownloadTargetResponse) ProtoMessage() {}

func (x *GetExportDownloadTargetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tablelift_v1_tablelift_proto_msgTypes[46]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExportDownloadTargetResponse.ProtoReflect.Descriptor instead.
func (*GetExportDownloadTargetResponse) Descriptor() ([]byte, []int) {
	return file_tablelift_v1_tablelift_proto_rawDescGZIP(), []int{46}
}

func (x *GetExportDownloadTargetResponse) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

var File_tablelift_v1_tablelift_proto protoreflect.FileDescriptor

const file_tablelift_v1_tablelift_proto_rawDesc = "" +
	"\n" +
	"\x1ctablelift/v1/tablelift.proto\x12\ftablelift.v1\"i\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1f\n" +
	"\vtemplate_id\x18\x03 \x01(\tR\n" +
	"templateId\x12\x1d\n" +
	"\n" +
	"created_at\x18\x04 \x01(\tR\tcreatedAt\"K\n" +
	"\tFieldSpec\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x12\n" +
	"\x04type\x18\x02 \x01(\tR\x04type\x12\x16\n" +
	"\x06prompt\x18\x03 \x01(\tR\x06prompt\"<\n" +
	"\x0eTaskDefinition\x12\x16\n" +
	"\x06folder\x18\x01 \x01(\tR\x06folder\x12\x12\n" +
	"\x04mode\x18\x02 \x01(\tR\x04mode\"\xc3\x03\n" +
	"\x06JobRun\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x1f\n" +
	"\vconfig_step\x18\x04 \x01(\tR\n" +
	"configStep\x12\x18\n" +
	"\aversion\x18\x05 \x01(\x05R\aversion\x12/\n" +
	"\x06fields\x18\x06 \x03(\v2\x17.tablelift.v1.FieldSpecR\x06fields\x129\n" +
	"\ttask_defs\x18\a \x03(\v2\x1c.tablelift.v1.TaskDefinitionR\btaskDefs\x12$\n" +
	"\x0ecloned_from_id\x18\b \x01(\tR\fclonedFromId\x12\x1f\n" +
	"\vtasks_total\x18\t \x01(\x05R\n" +
	"tasksTotal\x12'\n" +
	"\x0ftasks_completed\x18\n" +
	" \x01(\x05R\x0etasksCompleted\x12!\n" +
	"\ftasks_failed\x18\v \x01(\x05R\vtasksFailed\x12\x1d\n" +
	"\n" +
	"created_at\x18\f \x01(\tR\tcreatedAt\x12!\n" +
	"\fcompleted_at\x18\r \x01(\tR\vcompletedAt\"\xb5\x02\n" +
	"\n" +
	"SourceFile\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x15\n" +
	"\x06run_id\x18\x02 \x01(\tR\x05runId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1b\n" +
	"\tfile_size\x18\x05 \x01(\x03R\bfileSize\x12(\n" +
	"\x10content_hash_hex\x18\x06 \x01(\tR\x0econtentHashHex\x12\x16\n" +
	"\x06status\x18\a \x01(\tR\x06status\x12\x16\n" +
	"\x06origin\x18\b \x01(\tR\x06origin\x12\x1b\n" +
	"\tparent_id\x18\t \x01(\tR\bparentId\x12\x14\n" +
	"\x05error\x18\n" +
	" \x01(\tR\x05error\x12\x1f\n" +
	"\vuploaded_at\x18\v \x01(\tR\n" +
	"uploadedAt\"\x82\x02\n" +
	"\tOperation\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04kind\x18\x02 \x01(\tR\x04kind\x12\x15\n" +
	"\x06run_id\x18\x03 \x01(\tR\x05runId\x12\x14\n" +
	"\x05state\x18\x04 \x01(\tR\x05state\x12!\n" +
	"\fprogress_pct\x18\x05 \x01(\x05R\vprogressPct\x12\x14\n" +
	"\x05total\x18\x06 \x01(\x05R\x05total\x12\x1c\n" +
	"\tcompleted\x18\a \x01(\x05R\tcompleted\x12\x16\n" +
	"\x06failed\x18\b \x01(\x05R\x06failed\x12\x1f\n" +
	"\vresult_json\x18\t \x01(\tR\n" +
	"resultJson\x12\x14\n" +
	"\x05error\x18\n" +
	" \x01(\tR\x05error\"\xff\x01\n" +
	"\x06Export\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x15\n" +
	"\x06run_id\x18\x02 \x01(\tR\x05runId\x12!\n" +
	"\foperation_id\x18\x03 \x01(\tR\voperationId\x12 \n" +
	"\vdestination\x18\x04 \x01(\tR\vdestination\x12\x1b\n" +
	"\tfile_kind\x18\x05 \x01(\tR\bfileKind\x12\x14\n" +
	"\x05state\x18\x06 \x01(\tR\x05state\x12!\n" +
	"\fexternal_ref\x18\a \x01(\tR\vexternalRef\x12\x14\n" +
	"\x05error\x18\b \x01(\tR\x05error\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\"\xb0\x01\n" +
	"\x10ProgressSnapshot\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x05R\x05total\x12\x1c\n" +
	"\tcompleted\x18\x03 \x01(\x05R\tcompleted\x12\x16\n" +
	"\x06failed\x18\x04 \x01(\x05R\x06failed\x12\x1a\n" +
	"\bterminal\x18\x05 \x01(\bR\bterminal\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"G\n" +
	"\x10CreateJobRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1f\n" +
	"\vtemplate_id\x18\x02 \x01(\tR\n" +
	"templateId\"`\n" +
	"\x11CreateJobResponse\x12#\n" +
	"\x03job\x18\x01 \x01(\v2\x11.tablelift.v1.JobR\x03job\x12&\n" +
	"\x03run\x18\x02 \x01(\v2\x14.tablelift.v1.JobRunR\x03run\"&\n" +
	"\rGetJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"5\n" +
	"\x0eGetJobResponse\x12#\n" +
	"\x03job\x18\x01 \x01(\v2\x11.tablelift.v1.JobR\x03job\"\x11\n" +
	"\x0fListJobsRequest\"9\n" +
	"\x10ListJobsResponse\x12%\n" +
	"\x04jobs\x18\x01 \x03(\v2\x11.tablelift.v1.JobR\x04jobs\")\n" +
	"\x10DeleteJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"\x13\n" +
	"\x11DeleteJobResponse\"\x99\x01\n" +
	"\x10CreateRunRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12)\n" +
	"\x11clone_from_run_id\x18\x02 \x01(\tR\x0ecloneFromRunId\x12%\n" +
	"\x0eappend_results\x18\x03 \x01(\bR\rappendResults\x12\x1c\n" +
	"\tsupersede\x18\x04 \x01(\bR\tsupersede\";\n" +
	"\x11CreateRunResponse\x12&\n" +
	"\x03run\x18\x01 \x01(\v2\x14.tablelift.v1.JobRunR\x03run\"&\n" +
	"\rGetRunRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\"8\n" +
	"\x0eGetRunResponse\x12&\n" +
	"\x03run\x18\x01 \x01(\v2\x14.tablelift.v1.JobRunR\x03run\"(\n" +
	"\x0fListRunsRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"<\n" +
	"\x10ListRunsResponse\x12(\n" +
	"\x04runs\x18\x01 \x03(\v2\x14.tablelift.v1.JobRunR\x04runs\"}\n" +
	"\x18AdvanceConfigStepRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12\x1f\n" +
	"\vtarget_step\x18\x02 \x01(\tR\n" +
	"targetStep\x12)\n" +
	"\x10expected_version\x18\x03 \x01(\x05R\x0fexpectedVersion\"\xc6\x01\n" +
	"\x16ConfigureFieldsRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12/\n" +
	"\x06fields\x18\x02 \x03(\v2\x17.tablelift.v1.FieldSpecR\x06fields\x129\n" +
	"\ttask_defs\x18\x03 \x03(\v2\x1c.tablelift.v1.TaskDefinitionR\btaskDefs\x12)\n" +
	"\x10expected_version\x18\x04 \x01(\x05R\x0fexpectedVersion\"T\n" +
	"\x10SubmitRunRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12)\n" +
	"\x10expected_version\x18\x02 \x01(\x05R\x0fexpectedVersion\"T\n" +
	"\x10CancelRunRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12)\n" +
	"\x10expected_version\x18\x02 \x01(\x05R\x0fexpectedVersion\"I\n" +
	"\x12BeginUploadRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12\x1c\n" +
	"\tfilenames\x18\x02 \x03(\tR\tfilenames\"]\n" +
	"\fUploadTarget\x12,\n" +
	"\x04file\x18\x01 \x01(\v2\x18.tablelift.v1.SourceFileR\x04file\x12\x1f\n" +
	"\vupload_path\x18\x02 \x01(\tR\n" +
	"uploadPath\"K\n" +
	"\x13BeginUploadResponse\x124\n" +
	"\atargets\x18\x01 \x03(\v2\x1a.tablelift.v1.UploadTargetR\atargets\"/\n" +
	"\x14ConfirmUploadRequest\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\"E\n" +
	"\x15ConfirmUploadResponse\x12,\n" +
	"\x04file\x18\x01 \x01(\v2\x18.tablelift.v1.SourceFileR\x04file\"\\\n" +
	"\x17ImportFromSourceRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12\x16\n" +
	"\x06origin\x18\x02 \x01(\tR\x06origin\x12\x12\n" +
	"\x04refs\x18\x03 \x03(\tR\x04refs\"Q\n" +
	"\x18ImportFromSourceResponse\x125\n" +
	"\toperation\x18\x01 \x01(\v2\x17.tablelift.v1.OperationR\toperation\",\n" +
	"\x11RemoveFileRequest\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\"\x14\n" +
	"\x12RemoveFileResponse\"R\n" +
	"\x10ListFilesRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12'\n" +
	"\x0finclude_deleted\x18\x02 \x01(\bR\x0eincludeDeleted\"C\n" +
	"\x11ListFilesResponse\x12.\n" +
	"\x05files\x18\x01 \x03(\v2\x18.tablelift.v1.SourceFileR\x05files\",\n" +
	"\x13PollProgressRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\"1\n" +
	"\x18SubscribeProgressRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\"8\n" +
	"\x13GetOperationRequest\x12!\n" +
	"\foperation_id\x18\x01 \x01(\tR\voperationId\"M\n" +
	"\x14GetOperationResponse\x125\n" +
	"\toperation\x18\x01 \x01(\v2\x17.tablelift.v1.OperationR\toperation\"l\n" +
	"\x14RequestExportRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12\x1b\n" +
	"\tfile_kind\x18\x02 \x01(\tR\bfileKind\x12 \n" +
	"\vdestination\x18\x03 \x01(\tR\vdestination\"|\n" +
	"\x15RequestExportResponse\x12,\n" +
	"\x06export\x18\x01 \x01(\v2\x14.tablelift.v1.ExportR\x06export\x125\n" +
	"\toperation\x18\x02 \x01(\v2\x17.tablelift.v1.OperationR\toperation\"/\n" +
	"\x10GetExportRequest\x12\x1b\n" +
	"\texport_id\x18\x01 \x01(\tR\bexportId\"A\n" +
	"\x11GetExportResponse\x12,\n" +
	"\x06export\x18\x01 \x01(\v2\x14.tablelift.v1.ExportR\x06export\"=\n" +
	"\x1eGetExportDownloadTargetRequest\x12\x1b\n" +
	"\texport_id\x18\x01 \x01(\tR\bexportId\"5\n" +
	"\x1fGetExportDownloadTargetResponse\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path2\xde\x06\n" +
	"\n" +
	"JobService\x12L\n" +
	"\tCreateJob\x12\x1e.tablelift.v1.CreateJobRequest\x1a\x1f.tablelift.v1.CreateJobResponse\x12C\n" +
	"\x06GetJob\x12\x1b.tablelift.v1.GetJobRequest\x1a\x1c.tablelift.v1.GetJobResponse\x12I\n" +
	"\bListJobs\x12\x1d.tablelift.v1.ListJobsRequest\x1a\x1e.tablelift.v1.ListJobsResponse\x12L\n" +
	"\tDeleteJob\x12\x1e.tablelift.v1.DeleteJobRequest\x1a\x1f.tablelift.v1.DeleteJobResponse\x12L\n" +
	"\tCreateRun\x12\x1e.tablelift.v1.CreateRunRequest\x1a\x1f.tablelift.v1.CreateRunResponse\x12C\n" +
	"\x06GetRun\x12\x1b.tablelift.v1.GetRunRequest\x1a\x1c.tablelift.v1.GetRunResponse\x12I\n" +
	"\bListRuns\x12\x1d.tablelift.v1.ListRunsRequest\x1a\x1e.tablelift.v1.ListRunsResponse\x12Y\n" +
	"\x11AdvanceConfigStep\x12&.tablelift.v1.AdvanceConfigStepRequest\x1a\x1c.tablelift.v1.GetRunResponse\x12U\n" +
	"\x0fConfigureFields\x12$.tablelift.v1.ConfigureFieldsRequest\x1a\x1c.tablelift.v1.GetRunResponse\x12I\n" +
	"\tSubmitRun\x12\x1e.tablelift.v1.SubmitRunRequest\x1a\x1c.tablelift.v1.GetRunResponse\x12I\n" +
	"\tCancelRun\x12\x1e.tablelift.v1.CancelRunRequest\x1a\x1c.tablelift.v1.GetRunResponse2\xc2\x03\n" +
	"\x10IngestionService\x12R\n" +
	"\vBeginUpload\x12 .tablelift.v1.BeginUploadRequest\x1a!.tablelift.v1.BeginUploadResponse\x12X\n" +
	"\rConfirmUpload\x12\".tablelift.v1.ConfirmUploadRequest\x1a#.tablelift.v1.ConfirmUploadResponse\x12a\n" +
	"\x10ImportFromSource\x12%.tablelift.v1.ImportFromSourceRequest\x1a&.tablelift.v1.ImportFromSourceResponse\x12O\n" +
	"\n" +
	"RemoveFile\x12\x1f.tablelift.v1.RemoveFileRequest\x1a .tablelift.v1.RemoveFileResponse\x12L\n" +
	"\tListFiles\x12\x1e.tablelift.v1.ListFilesRequest\x1a\x1f.tablelift.v1.ListFilesResponse2\xc3\x01\n" +
	"\x0fProgressService\x12Q\n" +
	"\fPollProgress\x12!.tablelift.v1.PollProgressRequest\x1a\x1e.tablelift.v1.ProgressSnapshot\x12]\n" +
	"\x11SubscribeProgress\x12&.tablelift.v1.SubscribeProgressRequest\x1a\x1e.tablelift.v1.ProgressSnapshot0\x012i\n" +
	"\x10OperationService\x12U\n" +
	"\fGetOperation\x12!.tablelift.v1.GetOperationRequest\x1a\".tablelift.v1.GetOperationResponse2\xaf\x02\n" +
	"\rExportService\x12X\n" +
	"\rRequestExport\x12\".tablelift.v1.RequestExportRequest\x1a#.tablelift.v1.RequestExportResponse\x12L\n" +
	"\tGetExport\x12\x1e.tablelift.v1.GetExportRequest\x1a\x1f.tablelift.v1.GetExportResponse\x12v\n" +
	"\x17GetExportDownloadTarget\x12,.tablelift.v1.GetExportDownloadTargetRequest\x1a-.tablelift.v1.GetExportDownloadTargetResponseB:Z8github.com/tablelift/tablelift/gen/proto/tablelift/v1;v1b\x06proto3"

var (
	file_tablelift_v1_tablelift_proto_rawDescOnce sync.Once
	file_tablelift_v1_tablelift_proto_rawDescData []byte
)

func file_tablelift_v1_tablelift_proto_rawDescGZIP() []byte {
	file_tablelift_v1_tablelift_proto_rawDescOnce.Do(func() {
		file_tablelift_v1_tablelift_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_tablelift_v1_tablelift_proto_rawDesc), len(file_tablelift_v1_tablelift_proto_rawDesc)))
	})
	return file_tablelift_v1_tablelift_proto_rawDescData
}

var file_tablelift_v1_tablelift_proto_msgTypes = make([]protoimpl.MessageInfo, 47)
var file_tablelift_v1_tablelift_proto_goTypes = []any{
	(*Job)(nil),                             // 0: tablelift.v1.Job
	(*FieldSpec)(nil),                       // 1: tablelift.v1.FieldSpec
	(*TaskDefinition)(nil),                  // 2: tablelift.v1.TaskDefinition
	(*JobRun)(nil),                          // 3: tablelift.v1.JobRun
	(*SourceFile)(nil),                      // 4: tablelift.v1.SourceFile
	(*Operation)(nil),                       // 5: tablelift.v1.Operation
	(*Export)(nil),                          // 6: tablelift.v1.Export
	(*ProgressSnapshot)(nil),                // 7: tablelift.v1.ProgressSnapshot
	(*CreateJobRequest)(nil),                // 8: tablelift.v1.CreateJobRequest
	(*CreateJobResponse)(nil),               // 9: tablelift.v1.CreateJobResponse
	(*GetJobRequest)(nil),                   // 10: tablelift.v1.GetJobRequest
	(*GetJobResponse)(nil),                  // 11: tablelift.v1.GetJobResponse
	(*ListJobsRequest)(nil),                 // 12: tablelift.v1.ListJobsRequest
	(*ListJobsResponse)(nil),                // 13: tablelift.v1.ListJobsResponse
	(*DeleteJobRequest)(nil),                // 14: tablelift.v1.DeleteJobRequest
	(*DeleteJobResponse)(nil),               // 15: tablelift.v1.DeleteJobResponse
	(*CreateRunRequest)(nil),                // 16: tablelift.v1.CreateRunRequest
	(*CreateRunResponse)(nil),               // 17: tablelift.v1.CreateRunResponse
	(*GetRunRequest)(nil),                   // 18: tablelift.v1.GetRunRequest
	(*GetRunResponse)(nil),                  // 19: tablelift.v1.GetRunResponse
	(*ListRunsRequest)(nil),                 // 20: tablelift.v1.ListRunsRequest
	(*ListRunsResponse)(nil),                // 21: tablelift.v1.ListRunsResponse
	(*AdvanceConfigStepRequest)(nil),        // 22: tablelift.v1.AdvanceConfigStepRequest
	(*ConfigureFieldsRequest)(nil),          // 23: tablelift.v1.ConfigureFieldsRequest
	(*SubmitRunRequest)(nil),                // 24: tablelift.v1.SubmitRunRequest
	(*CancelRunRequest)(nil),                // 25: tablelift.v1.CancelRunRequest
	(*BeginUploadRequest)(nil),              // 26: tablelift.v1.BeginUploadRequest
	(*UploadTarget)(nil),                    // 27: tablelift.v1.UploadTarget
	(*BeginUploadResponse)(nil),             // 28: tablelift.v1.BeginUploadResponse
	(*ConfirmUploadRequest)(nil),            // 29: tablelift.v1.ConfirmUploadRequest
	(*ConfirmUploadResponse)(nil),           // 30: tablelift.v1.ConfirmUploadResponse
	(*ImportFromSourceRequest)(nil),         // 31: tablelift.v1.ImportFromSourceRequest
	(*ImportFromSourceResponse)(nil),        // 32: tablelift.v1.ImportFromSourceResponse
	(*RemoveFileRequest)(nil),               // 33: tablelift.v1.RemoveFileRequest
	(*RemoveFileResponse)(nil),              // 34: tablelift.v1.RemoveFileResponse
	(*ListFilesRequest)(nil),                // 35: tablelift.v1.ListFilesRequest
	(*ListFilesResponse)(nil),               // 36: tablelift.v1.ListFilesResponse
	(*PollProgressRequest)(nil),             // 37: tablelift.v1.PollProgressRequest
	(*SubscribeProgressRequest)(nil),        // 38: tablelift.v1.SubscribeProgressRequest
	(*GetOperationRequest)(nil),             // 39: tablelift.v1.GetOperationRequest
	(*GetOperationResponse)(nil),            // 40: tablelift.v1.GetOperationResponse
	(*RequestExportRequest)(nil),            // 41: tablelift.v1.RequestExportRequest
	(*RequestExportResponse)(nil),           // 42: tablelift.v1.RequestExportResponse
	(*GetExportRequest)(nil),                // 43: tablelift.v1.GetExportRequest
	(*GetExportResponse)(nil),               // 44: tablelift.v1.GetExportResponse
	(*GetExportDownloadTargetRequest)(nil),  // 45: tablelift.v1.GetExportDownloadTargetRequest
	(*GetExportDownloadTargetResponse)(nil), // 46: tablelift.v1.GetExportDownloadTargetResponse
}
var file_tablelift_v1_tablelift_proto_depIdxs = []int32{
	1,  // 0: tablelift.v1.JobRun.fields:type_name -> tablelift.v1.FieldSpec
	2,  // 1: tablelift.v1.JobRun.task_defs:type_name -> tablelift.v1.TaskDefinition
	0,  // 2: tablelift.v1.CreateJobResponse.job:type_name -> tablelift.v1.Job
	3,  // 3: tablelift.v1.CreateJobResponse.run:type_name -> tablelift.v1.JobRun
	0,  // 4: tablelift.v1.GetJobResponse.job:type_name -> tablelift.v1.Job
	0,  // 5: tablelift.v1.ListJobsResponse.jobs:type_name -> tablelift.v1.Job
	3,  // 6: tablelift.v1.CreateRunResponse.run:type_name -> tablelift.v1.JobRun
	3,  // 7: tablelift.v1.GetRunResponse.run:type_name -> tablelift.v1.JobRun
	3,  // 8: tablelift.v1.ListRunsResponse.runs:type_name -> tablelift.v1.JobRun
	1,  // 9: tablelift.v1.ConfigureFieldsRequest.fields:type_name -> tablelift.v1.FieldSpec
	2,  // 10: tablelift.v1.ConfigureFieldsRequest.task_defs:type_name -> tablelift.v1.TaskDefinition
	4,  // 11: tablelift.v1.UploadTarget.file:type_name -> tablelift.v1.SourceFile
	27, // 12: tablelift.v1.BeginUploadResponse.targets:type_name -> tablelift.v1.UploadTarget
	4,  // 13: tablelift.v1.ConfirmUploadResponse.file:type_name -> tablelift.v1.SourceFile
	5,  // 14: tablelift.v1.ImportFromSourceResponse.operation:type_name -> tablelift.v1.Operation
	4,  // 15: tablelift.v1.ListFilesResponse.files:type_name -> tablelift.v1.SourceFile
	5,  // 16: tablelift.v1.GetOperationResponse.operation:type_name -> tablelift.v1.Operation
	6,  // 17: tablelift.v1.RequestExportResponse.export:type_name -> tablelift.v1.Export
	5,  // 18: tablelift.v1.RequestExportResponse.operation:type_name -> tablelift.v1.Operation
	6,  // 19: tablelift.v1.GetExportResponse.export:type_name -> tablelift.v1.Export
	8,  // 20: tablelift.v1.JobService.CreateJob:input_type -> tablelift.v1.CreateJobRequest
	10, // 21: tablelift.v1.JobService.GetJob:input_type -> tablelift.v1.GetJobRequest
	12, // 22: tablelift.v1.JobService.ListJobs:input_type -> tablelift.v1.ListJobsRequest
	14, // 23: tablelift.v1.JobService.DeleteJob:input_type -> tablelift.v1.DeleteJobRequest
	16, // 24: tablelift.v1.JobService.CreateRun:input_type -> tablelift.v1.CreateRunRequest
	18, // 25: tablelift.v1.JobService.GetRun:input_type -> tablelift.v1.GetRunRequest
	20, // 26: tablelift.v1.JobService.ListRuns:input_type -> tablelift.v1.ListRunsRequest
	22, // 27: tablelift.v1.JobService.AdvanceConfigStep:input_type -> tablelift.v1.AdvanceConfigStepRequest
	23, // 28: tablelift.v1.JobService.ConfigureFields:input_type -> tablelift.v1.ConfigureFieldsRequest
	24, // 29: tablelift.v1.JobService.SubmitRun:input_type -> tablelift.v1.SubmitRunRequest
	25, // 30: tablelift.v1.JobService.CancelRun:input_type -> tablelift.v1.CancelRunRequest
	26, // 31: tablelift.v1.IngestionService.BeginUpload:input_type -> tablelift.v1.BeginUploadRequest
	29, // 32: tablelift.v1.IngestionService.ConfirmUpload:input_type -> tablelift.v1.ConfirmUploadRequest
	31, // 33: tablelift.v1.IngestionService.ImportFromSource:input_type -> tablelift.v1.ImportFromSourceRequest
	33, // 34: tablelift.v1.IngestionService.RemoveFile:input_type -> tablelift.v1.RemoveFileRequest
	35, // 35: tablelift.v1.IngestionService.ListFiles:input_type -> tablelift.v1.ListFilesRequest
	37, // 36: tablelift.v1.ProgressService.PollProgress:input_type -> tablelift.v1.PollProgressRequest
	38, // 37: tablelift.v1.ProgressService.SubscribeProgress:input_type -> tablelift.v1.SubscribeProgressRequest
	39, // 38: tablelift.v1.OperationService.GetOperation:input_type -> tablelift.v1.GetOperationRequest
	41, // 39: tablelift.v1.ExportService.RequestExport:input_type -> tablelift.v1.RequestExportRequest
	43, // 40: tablelift.v1.ExportService.GetExport:input_type -> tablelift.v1.GetExportRequest
	45, // 41: tablelift.v1.ExportService.GetExportDownloadTarget:input_type -> tablelift.v1.GetExportDownloadTargetRequest
	9,  // 42: tablelift.v1.JobService.CreateJob:output_type -> tablelift.v1.CreateJobResponse
	11, // 43: tablelift.v1.JobService.GetJob:output_type -> tablelift.v1.GetJobResponse
	13, // 44: tablelift.v1.JobService.ListJobs:output_type -> tablelift.v1.ListJobsResponse
	15, // 45: tablelift.v1.JobService.DeleteJob:output_type -> tablelift.v1.DeleteJobResponse
	17, // 46: tablelift.v1.JobService.CreateRun:output_type -> tablelift.v1.CreateRunResponse
	19, // 47: tablelift.v1.JobService.GetRun:output_type -> tablelift.v1.GetRunResponse
	21, // 48: tablelift.v1.JobService.ListRuns:output_type -> tablelift.v1.ListRunsResponse
	19, // 49: tablelift.v1.JobService.AdvanceConfigStep:output_type -> tablelift.v1.GetRunResponse
	19, // 50: tablelift.v1.JobService.ConfigureFields:output_type -> tablelift.v1.GetRunResponse
	19, // 51: tablelift.v1.JobService.SubmitRun:output_type -> tablelift.v1.GetRunResponse
	19, // 52: tablelift.v1.JobService.CancelRun:output_type -> tablelift.v1.GetRunResponse
	28, // 53: tablelift.v1.IngestionService.BeginUpload:output_type -> tablelift.v1.BeginUploadResponse
	30, // 54: tablelift.v1.IngestionService.ConfirmUpload:output_type -> tablelift.v1.ConfirmUploadResponse
	32, // 55: tablelift.v1.IngestionService.ImportFromSource:output_type -> tablelift.v1.ImportFromSourceResponse
	34, // 56: tablelift.v1.IngestionService.RemoveFile:output_type -> tablelift.v1.RemoveFileResponse
	36, // 57: tablelift.v1.IngestionService.ListFiles:output_type -> tablelift.v1.ListFilesResponse
	7,  // 58: tablelift.v1.ProgressService.PollProgress:output_type -> tablelift.v1.ProgressSnapshot
	7,  // 59: tablelift.v1.ProgressService.SubscribeProgress:output_type -> tablelift.v1.ProgressSnapshot
	40, // 60: tablelift.v1.OperationService.GetOperation:output_type -> tablelift.v1.GetOperationResponse
	42, // 61: tablelift.v1.ExportService.RequestExport:output_type -> tablelift.v1.RequestExportResponse
	44, // 62: tablelift.v1.ExportService.GetExport:output_type -> tablelift.v1.GetExportResponse
	46, // 63: tablelift.v1.ExportService.GetExportDownloadTarget:output_type -> tablelift.v1.GetExportDownloadTargetResponse
	42, // [42:64] is the sub-list for method output_type
	20, // [20:42] is the sub-list for method input_type
	20, // [20:20] is the sub-list for extension type_name
	20, // [20:20] is the sub-list for extension extendee
	0,  // [0:20] is the sub-list for field type_name
}

func init() { file_tablelift_v1_tablelift_proto_init() }
func file_tablelift_v1_tablelift_proto_init() {
	if File_tablelift_v1_tablelift_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_tablelift_v1_tablelift_proto_rawDesc), len(file_tablelift_v1_tablelift_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   47,
			NumExtensions: 0,
			NumServices:   5,
		},
		GoTypes:           file_tablelift_v1_tablelift_proto_goTypes,
		DependencyIndexes: file_tablelift_v1_tablelift_proto_depIdxs,
		MessageInfos:      file_tablelift_v1_tablelift_proto_msgTypes,
	}.Build()
	File_tablelift_v1_tablelift_proto = out.File
	file_tablelift_v1_tablelift_proto_goTypes = nil
	file_tablelift_v1_tablelift_proto_depIdxs = nil
}
