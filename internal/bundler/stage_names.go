package bundler

// StageName is a strongly-typed identifier for a build stage.
type StageName string

// Canonical stage names, in execution order.
const (
	StageBase           StageName = "base"
	StageResolveEntries StageName = "resolve_entries"
	StageSelectTarget   StageName = "select_target"
	StageOptimization   StageName = "optimization"
	StageAssembleRules  StageName = "assemble_rules"
	StageCorePlugins    StageName = "core_plugins"
	StageProvideAPI     StageName = "provide_api"
	StageNativeAssets   StageName = "native_assets"
)

// StageResult classifies how a stage finished.
type StageResult string

const (
	StageResultSuccess  StageResult = "success"
	StageResultWarning  StageResult = "warning"
	StageResultFatal    StageResult = "fatal"
	StageResultCanceled StageResult = "canceled"
)

// StageDef pairs a stage name with its executing function (internal wiring helper).
type StageDef struct {
	Name StageName
	Fn   Stage
}
