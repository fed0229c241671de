package db

import (
	"errors"
	"fmt"

	"github.com/cloudfoundry-community/go-cfenv"
)

func NewDSN(username, password, dbName, hostname string, port int) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8&parseTime=True", username, password, hostname, port, dbName)
}

func NewDSNFromVCAP(serviceName string) (string, error) {
	appEnv, err := cfenv.Current()
	if err != nil {
		return "", err
	}

	service, err := appEnv.Services.WithName(serviceName)
	if err != nil {
		return "", err
	}

	username, ok := service.Credentials["username"].(string)
	if !ok {
		return "", errors.New("could not read username")
	}

	password, ok := service.Credentials["password"].(string)
	if !ok {
		return "", errors.New("could not read password")
	}

	hostname, ok := service.Credentials["hostname"].(string)
	if !ok {
		return "", errors.New("could not read hostname")
	}

	portF, ok := service.Credentials["port"].(float64)
	if !ok {
		return "", errors.New("could not read port")
	}

	name, ok := service.Credentials["name"].(string)
	if !ok {
		return "", errors.New("could not read database name")
	}

	if len(username) == 0 || len(password) == 0 {
		return "", errors.New("empty database username or password")
	}

	return NewDSN(username, password, name, hostname, int(portF)), nil
}
