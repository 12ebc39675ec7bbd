package dom

import "github.com/sirupsen/logrus"

var logger = logrus.StandardLogger()

// SetLogger sets the logger used for tree tracing. Passing nil restores the
// logrus standard logger.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	logger = l
}

// Logger returns the logger set with SetLogger. Packages building trees log
// through it so one level applies to all tree output.
func Logger() *logrus.Logger {
	return logger
}

// traceTree logs a tree mutation. The markup of the whole tree is only
// rendered when debug logging is on.
func traceTree(method string, parent, node *Node) {
	if !logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	logger.WithFields(logrus.Fields{
		"method": method,
		"parent": nodeLabel(parent),
		"node":   nodeLabel(node),
	}).Debugf("[TREE]: %s", parent.getRoot().String())
}
