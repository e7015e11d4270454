package messages

// Resolver and installer messages.
const (
	// PlatformUnknownOSFmt formats the unsupported operating system error.
	PlatformUnknownOSFmt = "unknown OS %q"
	// PlatformUnknownArchFmt formats the unsupported architecture error.
	PlatformUnknownArchFmt = "unknown architecture %q"

	// IndexCreateRequestErrFmt formats release index request construction errors.
	IndexCreateRequestErrFmt = "create release index request: %w"
	IndexFetchErrFmt         = "fetch release index: %w"
	IndexUnexpectedStatusFmt = "fetch release index: unexpected status %s"
	IndexDecodeErrFmt        = "decode release index: %w"
	IndexNoStableRelease     = "release index returned no stable release"
	IndexMissingVersionFmt   = "release index entry has no version (channel %s)"
	IndexNoArchiveFmt        = "release %s has no %s/%s archive"

	// VersionUnknownFormatFmt formats version strings that lack the go prefix.
	VersionUnknownFormatFmt = "unknown version format %q"

	// InstallUpToDateFmt reports the early exit when the version directory exists.
	InstallUpToDateFmt = "go%s is already installed at %s; nothing to do\n"
	// InstallNoPrerelease reports the informational prerelease-unavailable exit.
	InstallNoPrerelease = "no prerelease build is currently available\n"

	InstallResolvedFmt  = "Resolved %s channel to go%s (%s)\n"
	InstallInstalledFmt = "Installed go%s to %s\n"
	InstallLinkedFmt    = "Channel %s now points at %s\n"

	InstallCheckPathFmt      = "check %s: %w"
	InstallCreateDirFmt      = "create install dir %s: %w"
	InstallDownloadFmt       = "download %s: %w"
	InstallDownloadStatFmt   = "download %s: unexpected status %s"
	InstallGzipFmt           = "read archive %s: %w"
	InstallTarFmt            = "extract archive %s: %w"
	InstallTarEntryFmt       = "extract archive entry %s: %w"
	InstallTarUnsupportedFmt = "unsupported archive entry %q"
	InstallTarIllegalPathFmt = "illegal archive path %q"
	InstallSymlinkFmt        = "create symlink %s: %w"
	InstallSymlinkSwapFmt    = "replace symlink %s: %w"
	InstallResolveRootFmt    = "resolve install root: %w"

	InstallOpenLockFmt    = "open lock %s: %w"
	InstallLockFmt        = "lock %s: %w"
	InstallLockTimeoutFmt = "timed out waiting for lock after %s"

	// StepFmt echoes a step to stderr in debug mode.
	StepFmt = "+ %s\n"
	// StepSkippedFmt echoes a mutating step skipped by dry-run mode.
	StepSkippedFmt = "+ %s (skipped, dry-run)\n"

	StepCreateInstallDirFmt = "create %s"
	StepDownloadExtractFmt  = "download %s and extract to %s"
	StepUpdateSymlinkFmt    = "point %s at %s"
	StepQueryIndexFmt       = "query release index %s"

	DoctorPlatformOKFmt      = "%s/%s is supported"
	DoctorRootWritableFmt    = "%s exists and is writable"
	DoctorRootCreatableFmt   = "%s does not exist yet and can be created"
	DoctorRootNotWritableFmt = "%s is not writable: %v"
	DoctorRootNotDirFmt      = "%s exists but is not a directory"
	DoctorRootRecommend      = "move or remove the conflicting entry, or set GOVER_ROOT to another directory"
	DoctorNetworkOKFmt       = "%s is reachable"
	DoctorNetworkFailedFmt   = "%s is not reachable: %v"
	DoctorNetworkRecommend   = "check your internet connection and proxy settings"
	DoctorNetworkSkippedFmt  = "reachability probe skipped (%s is set)"
)
