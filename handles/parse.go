package handles

import (
	"strconv"
	"strings"
)

// ParseLsofOutput decodes lsof -F output. Each line is one field:
// the first character selects the field, the rest is the value. A
// 'p' line starts a new process section, an 'f' line starts a new
// file section within it. The name field arrives last in a section
// so it completes the handle.
func ParseLsofOutput(output []byte) []*Handle {
	result := []*Handle{}

	var current_pid int32
	var current *Handle

	flush := func() {
		if current != nil && current.Name != "" {
			result = append(result, current)
		}
		current = nil
	}

	for _, line := range strings.Split(string(output), "\n") {
		if len(line) < 1 {
			continue
		}

		value := line[1:]
		switch line[0] {
		case 'p':
			flush()
			pid, err := strconv.ParseInt(value, 10, 32)
			if err == nil {
				current_pid = int32(pid)
			}

		case 'f':
			flush()
			current = &Handle{Pid: current_pid, Fd: value}

		case 'a':
			if current != nil {
				current.Access = strings.TrimSpace(value)
			}

		case 't':
			if current != nil {
				current.Type = value
			}

		case 'n':
			if current != nil {
				current.Name = value
			}
		}
	}
	flush()

	return result
}
