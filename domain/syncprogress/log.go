package syncprogress

import (
	"github.com/floripacoin/floripad/infrastructure/logger"
)

var log, _ = logger.Get(logger.SubsystemTags.SYNC)
