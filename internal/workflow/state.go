package workflow

// State is one step of an add-site run
type State int

const (
	StateCollectDomainAndEmail State = iota
	StateProvisionDocumentRoot
	StateCollectBackend
	StateCollectTLSChoice
	StateCollectTLSSubject
	StateGenerateCertificate
	StateRenderAndWriteConfig
	StateEnableSymlink
	StateDone
)

var stateNames = map[State]string{
	StateCollectDomainAndEmail: "collect-domain-and-email",
	StateProvisionDocumentRoot: "provision-document-root",
	StateCollectBackend:        "collect-backend",
	StateCollectTLSChoice:      "collect-tls-choice",
	StateCollectTLSSubject:     "collect-tls-subject",
	StateGenerateCertificate:   "generate-certificate",
	StateRenderAndWriteConfig:  "render-and-write-config",
	StateEnableSymlink:         "enable-symlink",
	StateDone:                  "done",
}

// String returns the state name used in logs
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// separatorAfter marks the states whose output is closed off by a separator line
var separatorAfter = map[State]bool{
	StateCollectDomainAndEmail: true,
	StateProvisionDocumentRoot: true,
	StateCollectBackend:        true,
	StateRenderAndWriteConfig:  true,
	StateEnableSymlink:         true,
}
