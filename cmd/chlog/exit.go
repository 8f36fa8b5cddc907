package main

// Exit codes for the chlog CLI. The numeric mapping is part of the
// interface; scripts depend on it.
const (
	ExitOK = 0

	// ExitUsage reports an invalid option, flag or config file.
	ExitUsage = 1

	// ExitSystem reports a generic system or IO failure.
	ExitSystem = 2

	// ExitGit reports a failed git invocation.
	ExitGit = 3

	// ExitUnknown is reserved; nothing returns it today.
	ExitUnknown = 4
)
