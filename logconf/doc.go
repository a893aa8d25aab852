// Package logconf wires external configuration sources to the logger.
//
// The logger core reads nothing on its own; this package is the optional
// collaborator that loads partial logger options from configuration files
// (JSON, YAML or TOML) and from environment variables. Keys absent from a
// source leave the corresponding option unset, so applying the result
// through logger.Configure preserves merge semantics end to end:
//
//	opts, err := logconf.Load("logging.yaml")
//	if err != nil {
//		return err
//	}
//	logger.Configure(opts)
//
// Recognized file keys: level, enabled, colorize. Recognized environment
// variables: LOGGER_LEVEL, LOGGER_ENABLED, LOGGER_COLORIZE.
package logconf
