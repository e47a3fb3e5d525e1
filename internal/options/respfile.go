package options

import (
	"os"
	"strings"
)

// ExpandResponseFiles replaces every argv token starting with "@" and
// naming a readable path with that file's contents split on newlines,
// discarding empty lines. A response file that cannot be read
// passes through unchanged, matching the "non-existent response files
// pass through unchanged" rule. The path after "@" may be relative or
// absolute; relative paths resolve against the process's current
// directory, same as swiftc's own @-response-file handling.
func ExpandResponseFiles(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if !strings.HasPrefix(a, "@") || len(a) < 2 {
			out = append(out, a)
			continue
		}
		path := a[1:]
		data, err := os.ReadFile(path)
		if err != nil {
			out = append(out, a)
			continue
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimRight(line, "\r")
			if line == "" {
				continue
			}
			out = append(out, line)
		}
	}
	return out
}
