package domain

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion

//region InvalidStateError

type InvalidStateError struct {
	Msg string
}

func (e *InvalidStateError) Error() string {
	return e.Msg
}

func (e *InvalidStateError) Is(target error) bool {
	_, ok := target.(*InvalidStateError)
	return ok
}

//endregion

//region DivisionByZeroError

type DivisionByZeroError struct {
	Msg string
}

func (e *DivisionByZeroError) Error() string {
	return e.Msg
}

func (e *DivisionByZeroError) Is(target error) bool {
	_, ok := target.(*DivisionByZeroError)
	return ok
}

//endregion

//region ProductNotFoundError

type ProductNotFoundError struct {
	Msg string
}

func (e *ProductNotFoundError) Error() string {
	return e.Msg
}

func (e *ProductNotFoundError) Is(target error) bool {
	_, ok := target.(*ProductNotFoundError)
	return ok
}

//endregion

//region InsufficientStockError

type InsufficientStockError struct {
	Msg string
}

func (e *InsufficientStockError) Error() string {
	return e.Msg
}

func (e *InsufficientStockError) Is(target error) bool {
	_, ok := target.(*InsufficientStockError)
	return ok
}

//endregion

//region UserNotFoundError

type UserNotFoundError struct {
	Msg string
}

func (e *UserNotFoundError) Error() string {
	return e.Msg
}

func (e *UserNotFoundError) Is(target error) bool {
	_, ok := target.(*UserNotFoundError)
	return ok
}

//endregion

//region PurchaseNotFoundError

type PurchaseNotFoundError struct {
	Msg string
}

func (e *PurchaseNotFoundError) Error() string {
	return e.Msg
}

func (e *PurchaseNotFoundError) Is(target error) bool {
	_, ok := target.(*PurchaseNotFoundError)
	return ok
}

//endregion

//region TransactionAbortedError

// TransactionAbortedError reports a rolled back checkout. The cause stays
// reachable through errors.Is / errors.As.
type TransactionAbortedError struct {
	Cause error
}

func (e *TransactionAbortedError) Error() string {
	if e.Cause == nil {
		return "transaction aborted"
	}

	return "transaction aborted: " + e.Cause.Error()
}

func (e *TransactionAbortedError) Is(target error) bool {
	_, ok := target.(*TransactionAbortedError)
	return ok
}

func (e *TransactionAbortedError) Unwrap() error {
	return e.Cause
}

//endregion

//region CheckoutInProgressError

type CheckoutInProgressError struct {
	Msg string
}

func (e *CheckoutInProgressError) Error() string {
	return e.Msg
}

func (e *CheckoutInProgressError) Is(target error) bool {
	_, ok := target.(*CheckoutInProgressError)
	return ok
}

//endregion
