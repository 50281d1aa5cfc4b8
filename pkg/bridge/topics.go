package bridge

import (
	"fmt"
	"strconv"
	"strings"
)

// Topic suffixes.
const (
	SuffixRX      = "rx"
	SuffixTX      = "tx"
	SuffixDecoded = "decoded"
)

// Topics builds and parses node topics under a root.
type Topics struct {
	Root string
}

// RX returns the topic frames from node arrive on.
func (t Topics) RX(node uint8) string { return t.node(node, SuffixRX) }

// TX returns the topic frames for node are sent on.
func (t Topics) TX(node uint8) string { return t.node(node, SuffixTX) }

// Decoded returns the topic decode results for node are published on.
func (t Topics) Decoded(node uint8) string { return t.node(node, SuffixDecoded) }

// AllRX returns the wildcard subscription for every node's rx topic.
func (t Topics) AllRX() string { return t.Root + "/+/" + SuffixRX }

func (t Topics) node(node uint8, suffix string) string {
	return fmt.Sprintf("%s/%d/%s", t.Root, node, suffix)
}

// ParseNode extracts the node ID and suffix from a node topic.
func (t Topics) ParseNode(topic string) (uint8, string, error) {
	rest, ok := strings.CutPrefix(topic, t.Root+"/")
	if !ok {
		return 0, "", fmt.Errorf("%w: %q is not under %q", ErrInvalidTopic, topic, t.Root)
	}
	nodeStr, suffix, ok := strings.Cut(rest, "/")
	if !ok || suffix == "" || strings.Contains(suffix, "/") {
		return 0, "", fmt.Errorf("%w: %q", ErrInvalidTopic, topic)
	}
	node, err := strconv.ParseUint(nodeStr, 10, 8)
	if err != nil || node == 0 {
		return 0, "", fmt.Errorf("%w: bad node in %q", ErrInvalidTopic, topic)
	}
	return uint8(node), suffix, nil
}
