package mrepo

// Well-known file and directory names used when laying out a repository's
// working tree. A config lives at <json_dir>/ConfigJSON, the published
// index is written to <json_dir>/ModulesJSON, and each tracked module
// keeps its staged archives and TrackJSON record under <modules_dir>/<id>/.
// ModuleProp is the manifest embedded at the root of each archive.
const (
	ConfigJSON  = "config.json"
	ModulesJSON = "modules.json"
	TrackJSON   = "track.json"

	JSONDir    = "json"
	ModulesDir = "modules"

	ModuleProp = "module.prop"

	TmpFile = "tmp"
	TmpDir  = "tmp.d"

	// SSHPrivateKeyEnv is the environment variable consulted when a git
	// provider module needs credentials and none were passed explicitly.
	SSHPrivateKeyEnv = "SSH_PRIVATE_KEY"
)
