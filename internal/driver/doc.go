// Package driver writes site configs into the web server's
// sites-available directory and activates them by symlinking into
// sites-enabled.
//
// Only Apache 2.4 is supported. All file operations go through an
// afero.Fs; enabling a site needs a filesystem that implements
// afero.Linker, such as afero.OsFs:
//
//	drv := driver.NewApache(afero.NewOsFs(), settings)
//
//	path, err := drv.WriteConfig("example.test", rendered)
//	created, err := drv.Enable("example.test")
//
// Enable never replaces an existing sites-enabled entry, so running it
// twice is harmless. WriteConfig always overwrites.
//
// MockDriver records calls for tests that do not need a filesystem.
package driver
