// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExportColumns holds the columns for the "export" table.
	ExportColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "run_id", Type: field.TypeUUID},
		{Name: "operation_id", Type: field.TypeUUID},
		{Name: "destination", Type: field.TypeString},
		{Name: "file_kind", Type: field.TypeString},
		{Name: "state", Type: field.TypeString, Default: "ACCEPTED"},
		{Name: "artifact_path", Type: field.TypeString, Nullable: true},
		{Name: "external_ref", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ExportTable holds the schema information for the "export" table.
	ExportTable = &schema.Table{
		Name:       "export",
		Columns:    ExportColumns,
		PrimaryKey: []*schema.Column{ExportColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "export_run_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExportColumns[1], ExportColumns[9]},
			},
			{
				Name:    "export_operation_id",
				Unique:  false,
				Columns: []*schema.Column{ExportColumns[2]},
			},
		},
	}
	// ExtractionTaskColumns holds the columns for the "extraction_task" table.
	ExtractionTaskColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "folder", Type: field.TypeString, Default: ""},
		{Name: "mode", Type: field.TypeString},
		{Name: "file_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "carried_over", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "run_id", Type: field.TypeUUID},
	}
	// ExtractionTaskTable holds the schema information for the "extraction_task" table.
	ExtractionTaskTable = &schema.Table{
		Name:       "extraction_task",
		Columns:    ExtractionTaskColumns,
		PrimaryKey: []*schema.Column{ExtractionTaskColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_task_job_run_tasks",
				Columns:    []*schema.Column{ExtractionTaskColumns[11]},
				RefColumns: []*schema.Column{JobRunColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractiontask_run_id_status",
				Unique:  false,
				Columns: []*schema.Column{ExtractionTaskColumns[11], ExtractionTaskColumns[4]},
			},
			{
				Name:    "extractiontask_run_id_folder_mode",
				Unique:  false,
				Columns: []*schema.Column{ExtractionTaskColumns[11], ExtractionTaskColumns[1], ExtractionTaskColumns[2]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "template_id", Type: field.TypeUUID, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
	}
	// JobRunColumns holds the columns for the "job_run" table.
	JobRunColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "config_step", Type: field.TypeString, Default: "UPLOAD"},
		{Name: "version", Type: field.TypeInt32, Default: 1},
		{Name: "fields", Type: field.TypeJSON, Nullable: true},
		{Name: "task_defs", Type: field.TypeJSON, Nullable: true},
		{Name: "fields_checksum", Type: field.TypeString, Nullable: true},
		{Name: "cloned_from_id", Type: field.TypeUUID, Nullable: true},
		{Name: "tasks_total", Type: field.TypeInt32, Default: 0},
		{Name: "tasks_completed", Type: field.TypeInt32, Default: 0},
		{Name: "tasks_failed", Type: field.TypeInt32, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// JobRunTable holds the schema information for the "job_run" table.
	JobRunTable = &schema.Table{
		Name:       "job_run",
		Columns:    JobRunColumns,
		PrimaryKey: []*schema.Column{JobRunColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_run_jobs_runs",
				Columns:    []*schema.Column{JobRunColumns[13]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobrun_job_id_config_step",
				Unique:  false,
				Columns: []*schema.Column{JobRunColumns[13], JobRunColumns[2]},
			},
			{
				Name:    "jobrun_job_id_status",
				Unique:  false,
				Columns: []*schema.Column{JobRunColumns[13], JobRunColumns[1]},
			},
		},
	}
	// OperationColumns holds the columns for the "operation" table.
	OperationColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeUUID},
		{Name: "state", Type: field.TypeString, Default: "ACCEPTED"},
		{Name: "total", Type: field.TypeInt, Default: 0},
		{Name: "completed", Type: field.TypeInt, Default: 0},
		{Name: "failed", Type: field.TypeInt, Default: 0},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OperationTable holds the schema information for the "operation" table.
	OperationTable = &schema.Table{
		Name:       "operation",
		Columns:    OperationColumns,
		PrimaryKey: []*schema.Column{OperationColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "operation_run_id_state",
				Unique:  false,
				Columns: []*schema.Column{OperationColumns[2], OperationColumns[3]},
			},
			{
				Name:    "operation_kind_created_at",
				Unique:  false,
				Columns: []*schema.Column{OperationColumns[1], OperationColumns[9]},
			},
		},
	}
	// SourceFilesColumns holds the columns for the "source_files" table.
	SourceFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString, Nullable: true},
		{Name: "file_size", Type: field.TypeInt64, Default: 0},
		{Name: "content_hash", Type: field.TypeBytes, Nullable: true, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "status", Type: field.TypeString, Default: "UPLOADING"},
		{Name: "origin", Type: field.TypeString},
		{Name: "parent_id", Type: field.TypeUUID, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeUUID},
	}
	// SourceFilesTable holds the schema information for the "source_files" table.
	SourceFilesTable = &schema.Table{
		Name:       "source_files",
		Columns:    SourceFilesColumns,
		PrimaryKey: []*schema.Column{SourceFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "source_files_job_run_files",
				Columns:    []*schema.Column{SourceFilesColumns[11]},
				RefColumns: []*schema.Column{JobRunColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sourcefile_run_id_status",
				Unique:  false,
				Columns: []*schema.Column{SourceFilesColumns[11], SourceFilesColumns[6]},
			},
			{
				Name:    "sourcefile_run_id_content_hash",
				Unique:  false,
				Columns: []*schema.Column{SourceFilesColumns[11], SourceFilesColumns[5]},
			},
			{
				Name:    "sourcefile_parent_id",
				Unique:  false,
				Columns: []*schema.Column{SourceFilesColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExportTable,
		ExtractionTaskTable,
		JobsTable,
		JobRunTable,
		OperationTable,
		SourceFilesTable,
	}
)

func init() {
	ExportTable.Annotation = &entsql.Annotation{
		Table: "export",
	}
	ExtractionTaskTable.ForeignKeys[0].RefTable = JobRunTable
	ExtractionTaskTable.Annotation = &entsql.Annotation{
		Table: "extraction_task",
	}
	JobsTable.Annotation = &entsql.Annotation{
		Table: "jobs",
	}
	JobRunTable.ForeignKeys[0].RefTable = JobsTable
	JobRunTable.Annotation = &entsql.Annotation{
		Table: "job_run",
	}
	OperationTable.Annotation = &entsql.Annotation{
		Table: "operation",
	}
	SourceFilesTable.ForeignKeys[0].RefTable = JobRunTable
	SourceFilesTable.Annotation = &entsql.Annotation{
		Table: "source_files",
	}
}
