package platform

// Package platform contains OS integration used by the desktop shell:
// locating the user's Downloads directory, naming export files, and
// revealing a written file in the system file manager.
