package resolve

// Reporter receives the decisions the merge strategies make as they go.
// The CLI logs them; tests usually pass NopReporter.
type Reporter interface {
	FieldAdded(name, fieldType string, number int)
	FieldSuperseded(name string)
	ImportMissing(path string)
	CaseAppended(typeTag string)
}

// NopReporter discards every event.
type NopReporter struct{}

func (NopReporter) FieldAdded(string, string, int) {}
func (NopReporter) FieldSuperseded(string)         {}
func (NopReporter) ImportMissing(string)           {}
func (NopReporter) CaseAppended(string)            {}
