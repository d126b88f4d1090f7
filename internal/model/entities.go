package model

import "github.com/google/uuid"

type Narrative struct {
	Owned
	NarrativeName           string     `json:"narrative_name" validate:"required,max=255"`
	NarrativeDescription    *string    `json:"narrative_description" validate:"omitempty,max=1000"`
	Theme                   *string    `json:"theme" validate:"omitempty,max=255"`
	SubTheme                *string    `json:"sub_theme" validate:"omitempty,max=255"`
	NarrativeFormats        *string    `json:"narrative_formats" validate:"omitempty,max=500"`
	NarrativeMainCharacters *string    `json:"narrative_main_characters" validate:"omitempty,max=500"`
	NarrativeStatus         *string    `json:"narrative_status" validate:"omitempty,max=50"`
	NarrativeCardID         *string    `json:"narrative_card_id" validate:"omitempty,max=50"`
	ExperienceID            *uuid.UUID `json:"experience_id"`
	HubID                   *uuid.UUID `json:"hub_id"`
	SubstoryID              *uuid.UUID `json:"substory_id"`
	ArtefactID              *uuid.UUID `json:"artefact_id"`
}

func (n *Narrative) ApplyDefaults() { setDefault(&n.NarrativeStatus, "draft") }

type Substory struct {
	Owned
	SubstoryName        string     `json:"substory_name" validate:"required,max=255"`
	SubstoryDescription *string    `json:"substory_description" validate:"omitempty,max=1000"`
	SubstoryLocations   *string    `json:"substory_locations" validate:"omitempty,max=500"`
	SubstoryFormat      *string    `json:"substory_format" validate:"omitempty,max=255"`
	SubstoryTheme       *string    `json:"substory_theme" validate:"omitempty,max=255"`
	SubstoryStatus      *string    `json:"substory_status" validate:"omitempty,max=50"`
	SubstoryCardID      *string    `json:"substory_card_id" validate:"omitempty,max=50"`
	ExperienceID        *uuid.UUID `json:"experience_id"`
	NarrativeID         *uuid.UUID `json:"narrative_id"`
	ArtefactID          *uuid.UUID `json:"artefact_id"`
	SiteID              *uuid.UUID `json:"site_id"`
}

func (s *Substory) ApplyDefaults() { setDefault(&s.SubstoryStatus, "draft") }

type Experience struct {
	Owned
	ExperienceName        string     `json:"experience_name" validate:"required,max=255"`
	ExperienceDescription *string    `json:"experience_description" validate:"omitempty,max=1000"`
	LocationType          *string    `json:"location_type" validate:"omitempty,max=255"`
	Investment            *float64   `json:"investment"`
	Stage                 *string    `json:"stage" validate:"omitempty,max=50"`
	Status                *string    `json:"status" validate:"omitempty,max=50"`
	Stakeholders          *string    `json:"stakeholders" validate:"omitempty,max=1000"`
	Responsible           *string    `json:"responsible" validate:"omitempty,max=255"`
	Accountable           *string    `json:"accountable" validate:"omitempty,max=255"`
	Consulted             *string    `json:"consulted" validate:"omitempty,max=255"`
	Informed              *string    `json:"informed" validate:"omitempty,max=255"`
	ExperienceBlueprintID *string    `json:"experience_blueprint_id" validate:"omitempty,max=50"`
	ExperienceComponentID *uuid.UUID `json:"experience_component_id"`
	HubID                 *uuid.UUID `json:"hub_id"`
	ClusterID             *uuid.UUID `json:"cluster_id"`
	SiteID                *uuid.UUID `json:"site_id"`
	FeasibilityID         *uuid.UUID `json:"feasibility_id"`
}

func (e *Experience) ApplyDefaults() {
	setDefault(&e.Stage, "concept")
	setDefault(&e.Status, "draft")
}

type ExperienceComponent struct {
	Owned
	ExperienceComponentName          string     `json:"experience_component_name" validate:"required,max=255"`
	ExperienceComponentDescription   *string    `json:"experience_component_description" validate:"omitempty,max=1000"`
	ExperienceComponentType          *string    `json:"experience_component_type" validate:"omitempty,max=255"`
	ExperienceComponentStatus        *string    `json:"experience_component_status" validate:"omitempty,max=50"`
	ExperienceComponentProvider      *string    `json:"experience_component_provider" validate:"omitempty,max=255"`
	ExperienceComponentCardID        *string    `json:"experience_component_card_id" validate:"omitempty,max=50"`
	ExperienceComponentDocumentation *string    `json:"experience_component_documentation" validate:"omitempty,max=2000"`
	ExperienceID                     *uuid.UUID `json:"experience_id"`
}

func (c *ExperienceComponent) ApplyDefaults() { setDefault(&c.ExperienceComponentStatus, "draft") }

type Site struct {
	Owned
	SiteName              string     `json:"site_name" validate:"required,max=255"`
	SiteDescription       *string    `json:"site_description" validate:"omitempty,max=1000"`
	SiteCategory          *string    `json:"site_category" validate:"omitempty,max=255"`
	SiteLocation          *string    `json:"site_location" validate:"omitempty,max=255"`
	SiteSize              *float64   `json:"site_size"`
	SiteBoundaryNorth     *float64   `json:"site_boundary_north"`
	SiteBoundaryEast      *float64   `json:"site_boundary_east"`
	SiteBoundarySouth     *float64   `json:"site_boundary_south"`
	SiteBoundaryWest      *float64   `json:"site_boundary_west"`
	SiteDocumentation     *string    `json:"site_documentation" validate:"omitempty,max=2000"`
	SiteStatus            *string    `json:"site_status" validate:"omitempty,max=50"`
	ExperienceID          *uuid.UUID `json:"experience_id"`
	HubID                 *uuid.UUID `json:"hub_id"`
	ClusterID             *uuid.UUID `json:"cluster_id"`
	ExperienceComponentID *uuid.UUID `json:"experience_component_id"`
}

func (s *Site) ApplyDefaults() { setDefault(&s.SiteStatus, "draft") }

type Cluster struct {
	Owned
	ClusterName           string     `json:"cluster_name" validate:"required,max=255"`
	ClusterDescription    *string    `json:"cluster_description" validate:"omitempty,max=1000"`
	ClusterLocation       *string    `json:"cluster_location" validate:"omitempty,max=255"`
	ClusterSize           *float64   `json:"cluster_size"`
	ClusterBoundaryNorth  *float64   `json:"cluster_boundary_north"`
	ClusterBoundaryEast   *float64   `json:"cluster_boundary_east"`
	ClusterBoundarySouth  *float64   `json:"cluster_boundary_south"`
	ClusterBoundaryWest   *float64   `json:"cluster_boundary_west"`
	ClusterDocumentation  *string    `json:"cluster_documentation" validate:"omitempty,max=2000"`
	ClusterStatus         *string    `json:"cluster_status" validate:"omitempty,max=50"`
	ExperienceID          *uuid.UUID `json:"experience_id"`
	HubID                 *uuid.UUID `json:"hub_id"`
	ExperienceComponentID *uuid.UUID `json:"experience_component_id"`
}

func (c *Cluster) ApplyDefaults() { setDefault(&c.ClusterStatus, "draft") }

type Artefact struct {
	Owned
	ArtefactName        string     `json:"artefact_name" validate:"required,max=255"`
	ArtefactDescription *string    `json:"artefact_description" validate:"omitempty,max=1000"`
	ArtefactFormat      *string    `json:"artefact_format" validate:"omitempty,max=255"`
	ArtefactLocation    *string    `json:"artefact_location" validate:"omitempty,max=255"`
	ArtefactStatus      *string    `json:"artefact_status" validate:"omitempty,max=50"`
	ArtefactTheme       *string    `json:"artefact_theme" validate:"omitempty,max=255"`
	ArtefactCardID      *string    `json:"artefact_card_id" validate:"omitempty,max=50"`
	ExperienceID        *uuid.UUID `json:"experience_id"`
	NarrativeID         *uuid.UUID `json:"narrative_id"`
	SubstoryID          *uuid.UUID `json:"substory_id"`
	SiteID              *uuid.UUID `json:"site_id"`
}

func (a *Artefact) ApplyDefaults() { setDefault(&a.ArtefactStatus, "draft") }

type Hub struct {
	Owned
	HubName          string     `json:"hub_name" validate:"required,max=255"`
	HubDescription   *string    `json:"hub_description" validate:"omitempty,max=1000"`
	HubLocation      *string    `json:"hub_location" validate:"omitempty,max=255"`
	HubSize          *float64   `json:"hub_size"`
	HubBoundaryNorth *float64   `json:"hub_boundary_north"`
	HubBoundaryEast  *float64   `json:"hub_boundary_east"`
	HubBoundarySouth *float64   `json:"hub_boundary_south"`
	HubBoundaryWest  *float64   `json:"hub_boundary_west"`
	HubTags          *string    `json:"hub_tags" validate:"omitempty,max=500"`
	ExperienceID     *uuid.UUID `json:"experience_id"`
	ClusterID        *uuid.UUID `json:"cluster_id"`
}

func (h *Hub) ApplyDefaults() {}

type Tour struct {
	Owned
	TourName          string     `json:"tour_name" validate:"required,max=255"`
	TourDescription   *string    `json:"tour_description" validate:"omitempty,max=1000"`
	TourTheme         *string    `json:"tour_theme" validate:"omitempty,max=255"`
	TourStartLocation *string    `json:"tour_start_location" validate:"omitempty,max=255"`
	TourEndLocation   *string    `json:"tour_end_location" validate:"omitempty,max=255"`
	TourLength        *float64   `json:"tour_length" validate:"omitempty,gte=0"`
	TourTime          *float64   `json:"tour_time" validate:"omitempty,gte=0"`
	TourStatus        *string    `json:"tour_status" validate:"omitempty,max=50"`
	ExperienceID      *uuid.UUID `json:"experience_id"`
	NarrativeID       *uuid.UUID `json:"narrative_id"`
	SiteID            *uuid.UUID `json:"site_id"`
}

func (t *Tour) ApplyDefaults() { setDefault(&t.TourStatus, "draft") }

type Feasibility struct {
	Owned
	FeasibilityStudyName        string     `json:"feasibility_study_name" validate:"required,max=255"`
	FeasibilityStudyDescription *string    `json:"feasibility_study_description" validate:"omitempty,max=1000"`
	FeasibilityStudyState       *string    `json:"feasibility_study_state" validate:"omitempty,max=50"`
	FeasibilityIRR              *float64   `json:"feasibility_irr"`
	FeasibilityROI              *float64   `json:"feasibility_roi"`
	FeasibilityDocumentation    *string    `json:"feasibility_documentation" validate:"omitempty,max=2000"`
	Feasible                    *bool      `json:"feasible"`
	ExperienceID                *uuid.UUID `json:"experience_id"`
}

func (f *Feasibility) ApplyDefaults() { setDefault(&f.FeasibilityStudyState, "draft") }
