package xmp

// Basic job ticket properties (xmpBJ) and their struct writers.

// Job writes the fields of an stJob job struct. Created by Jobs.AddJob.
type Job struct {
	stc  *StructElement
	item *Element
}

func (j *Job) field(name string, value Text) error {
	f, err := j.stc.Field(XMPJob, name)
	if err != nil {
		return err
	}
	if err := f.Scalar(value); err != nil {
		return err
	}
	return f.Close()
}

// ID writes stJob:id, an identifier unique within the workflow.
func (j *Job) ID(id string) error { return j.field("id", Text(id)) }

// Name writes stJob:name.
func (j *Job) Name(name string) error { return j.field("name", Text(name)) }

// URL writes stJob:url, a reference to an external job description.
func (j *Job) URL(url string) error { return j.field("url", Text(url)) }

// Close ends the job struct and unlocks the job bag.
func (j *Job) Close() error {
	if err := j.stc.Close(); err != nil {
		return err
	}
	return j.item.Close()
}

// Jobs writes the xmpBJ:JobRef bag of workflow jobs the document is
// part of. Created by the Jobs method; close it before using the packet
// writer again.
type Jobs struct {
	arr  *ArrayElement
	prop *Element
}

// AddJob appends a job to the bag. The returned job must be closed
// before the next AddJob.
func (js *Jobs) AddJob() (*Job, error) {
	item, err := js.arr.Item()
	if err != nil {
		return nil, err
	}
	stc, err := item.BeginStruct()
	if err != nil {
		return nil, err
	}
	return &Job{stc: stc, item: item}, nil
}

// Close ends the job bag and unlocks the packet writer.
func (js *Jobs) Close() error {
	if err := js.arr.Close(); err != nil {
		return err
	}
	return js.prop.Close()
}

// Jobs starts writing xmpBJ:JobRef.
func (w *PacketWriter) Jobs() (*Jobs, error) {
	prop, err := w.Property(XMPJobManagement, "JobRef")
	if err != nil {
		return nil, err
	}
	arr, err := prop.BeginArray(Unordered)
	if err != nil {
		return nil, err
	}
	return &Jobs{arr: arr, prop: prop}, nil
}
