package commands

// ReadPackageJSON exports readPackageJSON for testing.
var ReadPackageJSON = readPackageJSON //nolint:gochecknoglobals // test export
