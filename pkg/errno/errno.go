package errno

import "fmt"

const (
	SuccessCode  = 0
	ParamErrCode = 10001
	NotFoundCode = 10002
	ConflictCode = 10003
	ServiceCode  = 10004
	CascadeCode  = 10005
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

// Is matches on the code so wrapped or re-worded values still compare
// equal under errors.Is.
func (e ErrNo) Is(target error) bool {
	t, ok := target.(ErrNo)
	return ok && t.ErrCode == e.ErrCode
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success = NewErrNo(SuccessCode, "success")
	// ParamErr covers missing/malformed required fields and absent toggle targets.
	ParamErr    = NewErrNo(ParamErrCode, "param error")
	NotFoundErr = NewErrNo(NotFoundCode, "record not found")
	ConflictErr = NewErrNo(ConflictCode, "uniqueness conflict")
	ServiceErr  = NewErrNo(ServiceCode, "service error")
	// CascadeErr reports a partially completed cascade: the parent row is
	// already gone but the relation sweep failed and must be retried.
	CascadeErr = NewErrNo(CascadeCode, "cascade sweep incomplete")
)
