// Package specparse provides the YAML types and loaders for command class
// catalog files. Both zwave-catgen and the layout package import it.
//
// A catalog document lists command classes and their commands:
//
//	version: "1"
//	commandClasses:
//	  - name: Association
//	    id: 0x85
//	    version: 2
//	    commands:
//	      - { name: Get, id: 0x02, since: 1, direction: out }
//	      - name: Report
//	        id: 0x03
//	        since: 1
//	        direction: both
//	        fields:
//	          - { name: groupId, type: uint8 }
//	          - { name: nodes, type: list, elem: uint8 }
//
// Fields are optional for built-in classes, whose codecs are hand-written.
// Extension catalogs must declare them.
package specparse
