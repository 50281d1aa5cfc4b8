// Package bridge forwards command frames between MQTT and a dispatcher.
//
// Topics are rooted at the configured topic root (default "zwave"):
//
//	zwave/<node>/rx       raw frame bytes received from a node
//	zwave/<node>/decoded  JSON decode result published by the bridge
//	zwave/<node>/tx       raw frame bytes to send to a node
//
// A decoded message looks like:
//
//	{"node":12,"class":"0x85","command":"0x03","name":"Association Report",
//	 "kind":"VALUE","value":{"GroupID":1,"MaxAssociations":4,...}}
//
// Frames that fail with an unknown command or a malformed payload are
// logged and dropped. The bridge never retries them.
package bridge
