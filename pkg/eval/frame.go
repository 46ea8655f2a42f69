package eval

import (
	"github.com/kuzur-lang/kuzur/pkg/diag"
	"github.com/kuzur-lang/kuzur/pkg/parse"
)

// Frame contains information about the current function call frame: the
// local scope, the source being evaluated, the ports, and the traceback of
// the frames below it.
type Frame struct {
	ev        *Evaler
	src       parse.Source
	local     *Env
	ports     *Ports
	traceback *StackTrace
}

// errorp wraps an error into an *Exception, attaching the source context of
// the given range. If the error is nil or already an *Exception, it is
// returned unchanged.
func (fm *Frame) errorp(r diag.Ranger, reason error) error {
	if reason == nil {
		return nil
	}
	if _, ok := reason.(*Exception); ok {
		return reason
	}
	return &Exception{reason, &StackTrace{
		Head: diag.NewContext(fm.src.Name, fm.src.Code, r),
		Next: fm.traceback,
	}}
}
