package logging

import (
	"encoding/json"

	"github.com/Velocidex/ordereddict"
	"github.com/sirupsen/logrus"

	"github.com/analogsec/analog/config"
)

func json_marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// LogAudit records a state changing operation (chmod, acl edit,
// prefs write, sandbox run) in the audit component.
func LogAudit(config_obj *config.Config, operation string,
	details *ordereddict.Dict) {

	logger := GetLogger(config_obj, &Audit)

	fields := logrus.Fields{}
	for _, k := range details.Keys() {
		v, _ := details.Get(k)
		fields[k] = v
	}

	logger.WithFields(fields).Info(operation)
}
