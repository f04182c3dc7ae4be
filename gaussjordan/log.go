package gaussjordan

import logging "github.com/ipfs/go-log/v2"

// loggerName is the subsystem name used with logging.SetLogLevel.
const loggerName = "gaussjordan"

var log = logging.Logger(loggerName)
