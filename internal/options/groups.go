package options

import "strings"

// tokenFlagName returns the flag name a raw argv token spells, if any,
// stripping leading dashes and a trailing "=value".
func tokenFlagName(tok string) (string, bool) {
	if strings.HasPrefix(tok, "--") {
		tok = tok[2:]
	} else if strings.HasPrefix(tok, "-") {
		tok = tok[1:]
	} else {
		return "", false
	}
	if tok == "" {
		return "", false
	}
	if idx := strings.IndexByte(tok, '='); idx >= 0 {
		tok = tok[:idx]
	}
	return tok, true
}

// lastOfGroup scans raw argv (after response-file expansion) for the
// last occurrence of any flag named in group, returning its name. Used
// for the mutually-exclusive flag groups where "last one wins" spans
// several distinct flag spellings, which a plain pflag.FlagSet
// cannot express since it does not retain cross-flag ordering.
func lastOfGroup(rawArgs []string, group []string) (string, bool) {
	members := make(map[string]bool, len(group))
	for _, g := range group {
		members[g] = true
	}
	winner := ""
	found := false
	for _, tok := range rawArgs {
		name, ok := tokenFlagName(tok)
		if !ok {
			continue
		}
		if members[name] {
			winner = name
			found = true
		}
	}
	return winner, found
}

// lastOfPrefixGroup is like lastOfGroup but matches any flag whose
// name starts with prefix (used for the open-ended "dump_*" family).
func lastOfPrefixGroup(rawArgs []string, prefix string) (string, bool) {
	winner := ""
	found := false
	for _, tok := range rawArgs {
		name, ok := tokenFlagName(tok)
		if !ok {
			continue
		}
		if strings.HasPrefix(name, prefix) {
			winner = name
			found = true
		}
	}
	return winner, found
}
