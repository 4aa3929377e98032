package models

import "fmt"

type HealthConfig struct {
	Port                int    `yaml:"port" json:"port"`
	HealthCheckUsername string `yaml:"username" json:"username"`
	HealthCheckPassword string `yaml:"password" json:"password"`
}

func (c *HealthConfig) Validate() error {
	if c.HealthCheckUsername != "" && c.HealthCheckPassword == "" {
		return fmt.Errorf("health check username provided without password")
	}
	if c.HealthCheckUsername == "" && c.HealthCheckPassword != "" {
		return fmt.Errorf("health check password provided without username")
	}
	return nil
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
