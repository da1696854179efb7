package constants

import "os"

const (
	// DefaultFilePermissions sets the default permissions for regular files: (rw-r--r--).
	// Owner: read and write;
	// Group: read;
	// Others: read.
	DefaultFilePermissions os.FileMode = 0o644

	// DefaultFolderPermissions sets the default permissions for regular folders: (rwxr-xr-x).
	// Owner: read, write, and execute;
	// Group: read and execute;
	// Others: read and execute.
	DefaultFolderPermissions os.FileMode = 0o755
)

// Package file extensions recognized by the packages-only filter.
const (
	ExtensionAppx        = ".appx"
	ExtensionAppxBundle  = ".appxbundle"
	ExtensionMsix        = ".msix"
	ExtensionMsixBundle  = ".msixbundle"
	ExtensionEAppx       = ".eappx"
	ExtensionEAppxBundle = ".eappxbundle"
)

// ExtensionPart is appended to files that are still being downloaded.
const ExtensionPart = ".part"
