// Logon sessions.
//
// LsaEnumerateLogonSessions has no macOS equivalent API, but the utmpx
// database tracks the same thing for interactive logins. gopsutil
// reads utmpx directly; the who parser exists for systems where that
// fails (and as the documented fallback the notes describe).

package sessions

import (
	"context"
	"strings"
	"time"

	"github.com/Velocidex/ordereddict"
	"github.com/araddon/dateparse"
	"github.com/shirou/gopsutil/v4/host"

	"github.com/analogsec/analog/utils"
)

type Session struct {
	User     string
	Terminal string
	Host     string
	Started  time.Time
}

func (self *Session) ToDict() *ordereddict.Dict {
	started := ""
	if !self.Started.IsZero() {
		started = self.Started.Format(time.RFC3339)
	}

	return ordereddict.NewDict().
		Set("User", self.User).
		Set("Terminal", self.Terminal).
		Set("Host", self.Host).
		Set("Started", started)
}

func List(ctx context.Context, who_path string) ([]*Session, error) {
	users, err := host.UsersWithContext(ctx)
	if err == nil && len(users) > 0 {
		result := []*Session{}
		for _, u := range users {
			result = append(result, &Session{
				User:     u.User,
				Terminal: u.Terminal,
				Host:     u.Host,
				Started:  time.Unix(int64(u.Started), 0),
			})
		}
		return result, nil
	}

	if who_path == "" {
		who_path = "who"
	}

	stdout, _, err := utils.RunTool(ctx, who_path)
	if err != nil {
		return nil, err
	}

	return ParseWhoOutput(string(stdout)), nil
}

// ParseWhoOutput decodes classic who lines:
//
//	alice    console      Aug 20 09:14
//	alice    ttys001      Aug 23 10:02 (192.168.1.50)
func ParseWhoOutput(output string) []*Session {
	result := []*Session{}

	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}

		session := &Session{
			User:     fields[0],
			Terminal: fields[1],
		}

		time_fields := fields[2:]
		last := time_fields[len(time_fields)-1]
		if strings.HasPrefix(last, "(") && strings.HasSuffix(last, ")") {
			session.Host = strings.Trim(last, "()")
			time_fields = time_fields[:len(time_fields)-1]
		}

		started, err := dateparse.ParseLocal(
			strings.Join(time_fields, " "))
		if err == nil {
			session.Started = started
		}

		result = append(result, session)
	}

	return result
}
