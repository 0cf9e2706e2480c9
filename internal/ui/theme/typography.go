package theme

type Typography struct {
	Title  int32
	Header int32
	Body   int32
	Small  int32
	Slot   int32
}

var Type = Typography{
	Title:  32,
	Header: 22,
	Body:   19,
	Small:  15,
	Slot:   13,
}
