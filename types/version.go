package types

// Version is the canonical project version.
// All components (CLI, generator core, manifest format) share this version
// per the lockstep versioning policy.
const Version = "0.3.0"
