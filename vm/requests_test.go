package vm

import "testing"

// TestRequestTypesImplementRequest is a compile-time-flavored check: if any
// of these stopped satisfying Request, this file fails to compile.
func TestRequestTypesImplementRequest(t *testing.T) {
	var reqs = []Request{
		AccountExists{},
		GetStorage{},
		SetStorage{},
		GetBalance{},
		GetCodeSize{},
		GetCodeHash{},
		CopyCode{},
		Selfdestruct{},
		Call{},
		GetTxContext{},
		GetBlockHash{},
		EmitLog{},
		AccessAccount{},
		AccessStorage{},
		GetTransientStorage{},
		SetTransientStorage{},
	}
	if len(reqs) == 0 {
		t.Fatal("no request types registered")
	}
}

func TestReplyTypesImplementReply(t *testing.T) {
	var replies = []Reply{
		Bool{},
		Balance{},
		StorageValue{},
		StorageStatusReply{},
		Size{},
		CodeHash{},
		Code{},
		Done{},
		CallOutput{},
		TxContextData{},
		BlockHash{},
		AccessStatusReply{},
	}
	if len(replies) == 0 {
		t.Fatal("no reply types registered")
	}
}
