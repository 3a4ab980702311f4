// version.go: build identity for the loxi toolchain.

package loxi

// Version and BuildDate identify the build. Release builds override both at
// link time with -ldflags "-X".
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
)
