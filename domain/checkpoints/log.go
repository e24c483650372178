package checkpoints

import (
	"github.com/floripacoin/floripad/infrastructure/logger"
)

var log, _ = logger.Get(logger.SubsystemTags.CHKP)
