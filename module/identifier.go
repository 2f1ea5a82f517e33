package module

import "regexp"

// identifierPattern is the sanitised identifier grammar every module,
// port, internal signal, and submodule instance name must match so that
// synth can emit it into SystemVerilog text unchanged.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func validateIdentifier(name string) error {
	if !identifierPattern.MatchString(name) {
		return ErrInvalidIdentifier
	}
	return nil
}
