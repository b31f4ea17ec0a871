package core

// Tool is one managed software unit in the provisioning registry.
type Tool struct {
	// Name is the canonical package identifier, unique within the registry.
	Name string

	// Manager is the key of the backend that handles this tool.
	Manager string

	// Description is human-readable text for tables and docs.
	Description string

	// Binary is the on-disk executable name when it differs from Name.
	Binary string

	// Context is a grouping label ("Core", "Editor", ...) used only for
	// reporting and documentation.
	Context string
}

// BinaryName returns the executable name, falling back to the tool name.
func (t Tool) BinaryName() string {
	if t.Binary != "" {
		return t.Binary
	}
	return t.Name
}

// Status classifies the outcome of a version probe.
type Status string

const (
	// StatusUpToDate: installed, and no newer version is known.
	StatusUpToDate Status = "up-to-date"

	// StatusUpdateAvailable: installed, and the registry reports a
	// different version.
	StatusUpdateAvailable Status = "update-available"

	// StatusNotInstalled: no installed version was detected.
	StatusNotInstalled Status = "not-installed"

	// StatusUnknown: neither version could be determined. Declared for the
	// status legend; the classifier never produces it for a resolvable
	// manager.
	StatusUnknown Status = "unknown"

	// StatusError: the tool references a manager key with no registered
	// backend.
	StatusError Status = "error"
)

// ProbeResult is the outcome of probing one tool. Results are created fresh
// per probe and never persisted; two consecutive runs may disagree when the
// external state changed in between.
type ProbeResult struct {
	Tool Tool

	// Installed is the locally detected version, "" when absent.
	Installed string

	// Latest is the registry-reported version, "" when it could not be
	// determined.
	Latest string

	Status Status
}
