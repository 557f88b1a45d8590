package xmp

// Media management properties (xmpMM) and their struct writers.

// RenditionClass names the kind of a derived document.
type RenditionClass string

// Rendition classes.
const (
	RenditionDefault       RenditionClass = "default"
	RenditionDraft         RenditionClass = "draft"
	RenditionLowResolution RenditionClass = "low-res"
	RenditionProof         RenditionClass = "proof"
	RenditionScreen        RenditionClass = "screen"
	RenditionThumbnail     RenditionClass = "thumbnail"
)

// EventAction names an action recorded in the document history.
type EventAction string

// Event actions.
const (
	ActionConverted      EventAction = "converted"
	ActionCopied         EventAction = "copied"
	ActionCreated        EventAction = "created"
	ActionCropped        EventAction = "cropped"
	ActionEdited         EventAction = "edited"
	ActionFiltered       EventAction = "filtered"
	ActionFormatted      EventAction = "formatted"
	ActionVersionUpdated EventAction = "version_updated"
	ActionPrinted        EventAction = "printed"
	ActionPublished      EventAction = "published"
	ActionManaged        EventAction = "managed"
	ActionProduced       EventAction = "produced"
	ActionResized        EventAction = "resized"
	ActionSaved          EventAction = "saved"
)

// SetDocumentID writes xmpMM:DocumentID, the identifier shared by all
// versions and renditions of a document.
func (w *PacketWriter) SetDocumentID(id string) error {
	return w.SetProperty(XMPMedia, "DocumentID", Text(id))
}

// SetInstanceID writes xmpMM:InstanceID, updated each time the document
// is saved.
func (w *PacketWriter) SetInstanceID(id string) error {
	return w.SetProperty(XMPMedia, "InstanceID", Text(id))
}

// OriginalDocumentID writes xmpMM:OriginalDocumentID.
func (w *PacketWriter) OriginalDocumentID(id string) error {
	return w.SetProperty(XMPMedia, "OriginalDocumentID", Text(id))
}

// VersionID writes xmpMM:VersionID.
func (w *PacketWriter) VersionID(id string) error {
	return w.SetProperty(XMPMedia, "VersionID", Text(id))
}

// Manager writes xmpMM:Manager, the application managing the document.
func (w *PacketWriter) Manager(manager string) error {
	return w.SetProperty(XMPMedia, "Manager", Text(manager))
}

// ManagerVariant writes xmpMM:ManagerVariant.
func (w *PacketWriter) ManagerVariant(variant string) error {
	return w.SetProperty(XMPMedia, "ManagerVariant", Text(variant))
}

// ManageTo writes xmpMM:ManageTo, the document's URI in the management
// system.
func (w *PacketWriter) ManageTo(uri string) error {
	return w.SetProperty(XMPMedia, "ManageTo", Text(uri))
}

// ManageUI writes xmpMM:ManageUI, a web page for managing the document.
func (w *PacketWriter) ManageUI(uri string) error {
	return w.SetProperty(XMPMedia, "ManageUI", Text(uri))
}

// SetRenditionClass writes xmpMM:RenditionClass. Absent or
// RenditionDefault for documents that are not derived renditions.
func (w *PacketWriter) SetRenditionClass(class RenditionClass) error {
	return w.SetProperty(XMPMedia, "RenditionClass", Text(string(class)))
}

// RenditionParams writes xmpMM:RenditionParams.
func (w *PacketWriter) RenditionParams(params string) error {
	return w.SetProperty(XMPMedia, "RenditionParams", Text(params))
}

// ResourceRef writes the fields of an stRef resource reference struct.
// Created by DerivedFrom or ManagedFrom; must be closed before the packet
// writer accepts further properties.
type ResourceRef struct {
	stc  *StructElement
	prop *Element
}

func startResourceRef(w *PacketWriter, name string) (*ResourceRef, error) {
	prop, err := w.Property(XMPMedia, name)
	if err != nil {
		return nil, err
	}
	stc, err := prop.BeginStruct()
	if err != nil {
		return nil, err
	}
	return &ResourceRef{stc: stc, prop: prop}, nil
}

func (r *ResourceRef) field(name string, value Text) error {
	f, err := r.stc.Field(XMPResourceRef, name)
	if err != nil {
		return err
	}
	if err := f.Scalar(value); err != nil {
		return err
	}
	return f.Close()
}

// FilePath writes stRef:filePath, the path or URL to the resource.
func (r *ResourceRef) FilePath(path string) error { return r.field("filePath", Text(path)) }

// DocumentID writes stRef:documentID.
func (r *ResourceRef) DocumentID(id string) error { return r.field("documentID", Text(id)) }

// InstanceID writes stRef:instanceID.
func (r *ResourceRef) InstanceID(id string) error { return r.field("instanceID", Text(id)) }

// VersionID writes stRef:versionID.
func (r *ResourceRef) VersionID(id string) error { return r.field("versionID", Text(id)) }

// Manager writes stRef:manager.
func (r *ResourceRef) Manager(manager string) error { return r.field("manager", Text(manager)) }

// ManagerVariant writes stRef:managerVariant.
func (r *ResourceRef) ManagerVariant(variant string) error {
	return r.field("managerVariant", Text(variant))
}

// RenditionClass writes stRef:renditionClass.
func (r *ResourceRef) RenditionClass(class RenditionClass) error {
	return r.field("renditionClass", Text(string(class)))
}

// LastModifyDate writes stRef:lastModifyDate.
func (r *ResourceRef) LastModifyDate(date Date) error {
	return r.field("lastModifyDate", date.Text())
}

// Close ends the reference struct and unlocks the packet writer.
func (r *ResourceRef) Close() error {
	if err := r.stc.Close(); err != nil {
		return err
	}
	return r.prop.Close()
}

// DerivedFrom starts writing xmpMM:DerivedFrom, a reference to the
// document this one is derived from.
func (w *PacketWriter) DerivedFrom() (*ResourceRef, error) {
	return startResourceRef(w, "DerivedFrom")
}

// ManagedFrom starts writing xmpMM:ManagedFrom, a reference to the
// document before it was managed.
func (w *PacketWriter) ManagedFrom() (*ResourceRef, error) {
	return startResourceRef(w, "ManagedFrom")
}

// ResourceEvent writes the fields of an stEvt resource event struct.
// Created by History.AddEvent.
type ResourceEvent struct {
	stc  *StructElement
	item *Element
}

func (e *ResourceEvent) field(name string, value Text) error {
	f, err := e.stc.Field(XMPResourceEvent, name)
	if err != nil {
		return err
	}
	if err := f.Scalar(value); err != nil {
		return err
	}
	return f.Close()
}

// Action writes stEvt:action.
func (e *ResourceEvent) Action(action EventAction) error {
	return e.field("action", Text(string(action)))
}

// When writes stEvt:when, the time the action occurred.
func (e *ResourceEvent) When(date Date) error { return e.field("when", date.Text()) }

// SoftwareAgent writes stEvt:softwareAgent.
func (e *ResourceEvent) SoftwareAgent(agent string) error {
	return e.field("softwareAgent", Text(agent))
}

// InstanceID writes stEvt:instanceID, the document's instance ID at the
// time of the action.
func (e *ResourceEvent) InstanceID(id string) error { return e.field("instanceID", Text(id)) }

// Parameters writes stEvt:parameters, additional action parameters.
func (e *ResourceEvent) Parameters(params string) error {
	return e.field("parameters", Text(params))
}

// Changed writes stEvt:changed, a semicolon-separated list of changed
// parts.
func (e *ResourceEvent) Changed(parts string) error { return e.field("changed", Text(parts)) }

// Close ends the event struct and unlocks the history array.
func (e *ResourceEvent) Close() error {
	if err := e.stc.Close(); err != nil {
		return err
	}
	return e.item.Close()
}

// History writes the xmpMM:History sequence of actions taken on the
// document. Created by the History method; close it before using the
// packet writer again.
type History struct {
	arr  *ArrayElement
	prop *Element
}

// AddEvent appends an event to the history. The returned event must be
// closed before the next AddEvent.
func (h *History) AddEvent() (*ResourceEvent, error) {
	item, err := h.arr.Item()
	if err != nil {
		return nil, err
	}
	stc, err := item.BeginStruct()
	if err != nil {
		return nil, err
	}
	return &ResourceEvent{stc: stc, item: item}, nil
}

// Close ends the history sequence and unlocks the packet writer.
func (h *History) Close() error {
	if err := h.arr.Close(); err != nil {
		return err
	}
	return h.prop.Close()
}

// History starts writing xmpMM:History.
func (w *PacketWriter) History() (*History, error) {
	prop, err := w.Property(XMPMedia, "History")
	if err != nil {
		return nil, err
	}
	arr, err := prop.BeginArray(Ordered)
	if err != nil {
		return nil, err
	}
	return &History{arr: arr, prop: prop}, nil
}

// Ingredients writes the xmpMM:Ingredients bag of references to the
// resources composited into this document. Created by the Ingredients
// method; close it before using the packet writer again.
type Ingredients struct {
	arr  *ArrayElement
	prop *Element
}

// AddRef appends one ingredient reference. The returned reference must
// be closed before the next AddRef.
func (i *Ingredients) AddRef() (*ResourceRef, error) {
	item, err := i.arr.Item()
	if err != nil {
		return nil, err
	}
	stc, err := item.BeginStruct()
	if err != nil {
		return nil, err
	}
	return &ResourceRef{stc: stc, prop: item}, nil
}

// Close ends the ingredient bag and unlocks the packet writer.
func (i *Ingredients) Close() error {
	if err := i.arr.Close(); err != nil {
		return err
	}
	return i.prop.Close()
}

// Ingredients starts writing xmpMM:Ingredients.
func (w *PacketWriter) Ingredients() (*Ingredients, error) {
	prop, err := w.Property(XMPMedia, "Ingredients")
	if err != nil {
		return nil, err
	}
	arr, err := prop.BeginArray(Unordered)
	if err != nil {
		return nil, err
	}
	return &Ingredients{arr: arr, prop: prop}, nil
}

// Version writes the fields of an stVer document version struct.
// Created by Versions.AddVersion.
type Version struct {
	stc  *StructElement
	item *Element
}

func (v *Version) field(name string, value Text) error {
	f, err := v.stc.Field(XMPVersion, name)
	if err != nil {
		return err
	}
	if err := f.Scalar(value); err != nil {
		return err
	}
	return f.Close()
}

// Comments writes stVer:comments.
func (v *Version) Comments(comments string) error { return v.field("comments", Text(comments)) }

// Modifier writes stVer:modifier, the person who created this version.
func (v *Version) Modifier(modifier string) error { return v.field("modifier", Text(modifier)) }

// ModifyDate writes stVer:modifyDate.
func (v *Version) ModifyDate(date Date) error { return v.field("modifyDate", date.Text()) }

// VersionID writes stVer:version.
func (v *Version) VersionID(id string) error { return v.field("version", Text(id)) }

// Event starts writing stVer:event, the action that created this
// version. Close it before writing further version fields.
func (v *Version) Event() (*ResourceEvent, error) {
	f, err := v.stc.Field(XMPVersion, "event")
	if err != nil {
		return nil, err
	}
	stc, err := f.BeginStruct()
	if err != nil {
		return nil, err
	}
	return &ResourceEvent{stc: stc, item: f}, nil
}

// Close ends the version struct and unlocks the versions sequence.
func (v *Version) Close() error {
	if err := v.stc.Close(); err != nil {
		return err
	}
	return v.item.Close()
}

// Versions writes the xmpMM:Versions sequence of saved document
// versions. Created by the Versions method; close it before using the
// packet writer again.
type Versions struct {
	arr  *ArrayElement
	prop *Element
}

// AddVersion appends a version to the sequence. The returned version
// must be closed before the next AddVersion.
func (vs *Versions) AddVersion() (*Version, error) {
	item, err := vs.arr.Item()
	if err != nil {
		return nil, err
	}
	stc, err := item.BeginStruct()
	if err != nil {
		return nil, err
	}
	return &Version{stc: stc, item: item}, nil
}

// Close ends the version sequence and unlocks the packet writer.
func (vs *Versions) Close() error {
	if err := vs.arr.Close(); err != nil {
		return err
	}
	return vs.prop.Close()
}

// Versions starts writing xmpMM:Versions.
func (w *PacketWriter) Versions() (*Versions, error) {
	prop, err := w.Property(XMPMedia, "Versions")
	if err != nil {
		return nil, err
	}
	arr, err := prop.BeginArray(Ordered)
	if err != nil {
		return nil, err
	}
	return &Versions{arr: arr, prop: prop}, nil
}
