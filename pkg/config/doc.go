// Package config loads the YAML configuration shared by the command-line
// tools.
//
// Values are applied in order: built-in defaults, the YAML file, then
// ZWAVE_* environment variables. Command-line flags are applied by the
// tools on top of the result.
//
//	log_level: info
//	log_format: text
//	capture_file: /var/log/zwave/capture.zlog
//	extensions:
//	  - extensions/door-lock.yaml
//	mqtt:
//	  broker: tcp://localhost:1883
//	  client_id: zwave-decode
//	  qos: 1
//	  topic_root: zwave
//
// Relative extension paths are resolved against the directory of the
// configuration file.
package config
