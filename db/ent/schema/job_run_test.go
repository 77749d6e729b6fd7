package schema

import (
	"testing"

	"entgo.io/ent/schema/field"
)

// The run entity and repository move these columns as int32; the schema has
// to agree or the generated setters come out as int.
func TestJobRunCounterColumnsAreInt32(t *testing.T) {
	want := map[string]field.Type{
		"version":         field.TypeInt32,
		"tasks_total":     field.TypeInt32,
		"tasks_completed": field.TypeInt32,
		"tasks_failed":    field.TypeInt32,
	}
	for _, f := range (JobRun{}).Fields() {
		d := f.Descriptor()
		wantType, ok := want[d.Name]
		if !ok {
			continue
		}
		delete(want, d.Name)
		if d.Info.Type != wantType {
			t.Errorf("field %s type = %s, want %s", d.Name, d.Info.Type, wantType)
		}
	}
	for name := range want {
		t.Errorf("field %s missing from JobRun schema", name)
	}
}
