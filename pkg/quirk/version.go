package quirk

// Version is the release of the quirk module.
const Version = "0.1.0"
