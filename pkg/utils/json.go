package utils

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func PrettyJson(in any) string {
	var buffer []byte
	var err error

	if raw, ok := in.([]byte); ok {
		buffer = raw
	} else {
		buffer, err = json.Marshal(in)
		if err != nil {
			logrus.WithError(err).Warn("utils: erro ao serializar valor")
		}
	}

	var out bytes.Buffer
	if err = jsonIndent(&out, buffer); err != nil {
		logrus.WithError(err).Warn("utils: erro ao indentar JSON")
	}

	return out.String()
}

func jsonIndent(out *bytes.Buffer, buffer []byte) error {
	var v any
	if err := json.Unmarshal(buffer, &v); err != nil {
		return err
	}

	// jsoniter só aceita espaços na indentação
	indented, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	out.Write(indented)
	return nil
}
