// Package config holds the layered configuration of ezmcp.
//
// Two kinds of configuration live here and deliberately behave differently:
//
//   - Server identity and logging settings are loaded once at startup.
//     Defaults are overlaid by an optional .ezmcp/config.yaml in the working
//     directory. See LoadConfig.
//
//   - Greeting settings (GREETING_PREFIX, ENVIRONMENT) are read from the
//     process environment on every call via CurrentGreeting. Handlers depend
//     on this: changing GREETING_PREFIX between two requests changes the
//     output of the very next one, without a restart.
//
// Example config.yaml:
//
//	server:
//	  name: EZ-MCP Demo Server
//	  version: 1.0.0
//	logging:
//	  level: debug
package config
