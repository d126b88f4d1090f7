package store

import "heritage-api/internal/model"

var Narratives = Table[model.Narrative]{
	Name: "narratives",
	Columns: []string{
		"narrative_name",
		"narrative_description",
		"theme",
		"sub_theme",
		"narrative_formats",
		"narrative_main_characters",
		"narrative_status",
		"narrative_card_id",
		"experience_id",
		"hub_id",
		"substory_id",
		"artefact_id",
	},
	Fields: func(n *model.Narrative) []any {
		return []any{
			&n.NarrativeName,
			&n.NarrativeDescription,
			&n.Theme,
			&n.SubTheme,
			&n.NarrativeFormats,
			&n.NarrativeMainCharacters,
			&n.NarrativeStatus,
			&n.NarrativeCardID,
			&n.ExperienceID,
			&n.HubID,
			&n.SubstoryID,
			&n.ArtefactID,
		}
	},
	Meta:     func(n *model.Narrative) *model.Owned { return &n.Owned },
	Defaults: (*model.Narrative).ApplyDefaults,
}

var Substories = Table[model.Substory]{
	Name: "substories",
	Columns: []string{
		"substory_name",
		"substory_description",
		"substory_locations",
		"substory_format",
		"substory_theme",
		"substory_status",
		"substory_card_id",
		"experience_id",
		"narrative_id",
		"artefact_id",
		"site_id",
	},
	Fields: func(s *model.Substory) []any {
		return []any{
			&s.SubstoryName,
			&s.SubstoryDescription,
			&s.SubstoryLocations,
			&s.SubstoryFormat,
			&s.SubstoryTheme,
			&s.SubstoryStatus,
			&s.SubstoryCardID,
			&s.ExperienceID,
			&s.NarrativeID,
			&s.ArtefactID,
			&s.SiteID,
		}
	},
	Meta:     func(s *model.Substory) *model.Owned { return &s.Owned },
	Defaults: (*model.Substory).ApplyDefaults,
}

var Experiences = Table[model.Experience]{
	Name: "experiences",
	Columns: []string{
		"experience_name",
		"experience_description",
		"location_type",
		"investment",
		"stage",
		"status",
		"stakeholders",
		"responsible",
		"accountable",
		"consulted",
		"informed",
		"experience_blueprint_id",
		"experience_component_id",
		"hub_id",
		"cluster_id",
		"site_id",
		"feasibility_id",
	},
	Fields: func(e *model.Experience) []any {
		return []any{
			&e.ExperienceName,
			&e.ExperienceDescription,
			&e.LocationType,
			&e.Investment,
			&e.Stage,
			&e.Status,
			&e.Stakeholders,
			&e.Responsible,
			&e.Accountable,
			&e.Consulted,
			&e.Informed,
			&e.ExperienceBlueprintID,
			&e.ExperienceComponentID,
			&e.HubID,
			&e.ClusterID,
			&e.SiteID,
			&e.FeasibilityID,
		}
	},
	Meta:     func(e *model.Experience) *model.Owned { return &e.Owned },
	Defaults: (*model.Experience).ApplyDefaults,
}

var ExperienceComponents = Table[model.ExperienceComponent]{
	Name: "experience_components",
	Columns: []string{
		"experience_component_name",
		"experience_component_description",
		"experience_component_type",
		"experience_component_status",
		"experience_component_provider",
		"experience_component_card_id",
		"experience_component_documentation",
		"experience_id",
	},
	Fields: func(e *model.ExperienceComponent) []any {
		return []any{
			&e.ExperienceComponentName,
			&e.ExperienceComponentDescription,
			&e.ExperienceComponentType,
			&e.ExperienceComponentStatus,
			&e.ExperienceComponentProvider,
			&e.ExperienceComponentCardID,
			&e.ExperienceComponentDocumentation,
			&e.ExperienceID,
		}
	},
	Meta:     func(e *model.ExperienceComponent) *model.Owned { return &e.Owned },
	Defaults: (*model.ExperienceComponent).ApplyDefaults,
}

var Sites = Table[model.Site]{
	Name: "sites",
	Columns: []string{
		"site_name",
		"site_description",
		"site_category",
		"site_location",
		"site_size",
		"site_boundary_north",
		"site_boundary_east",
		"site_boundary_south",
		"site_boundary_west",
		"site_documentation",
		"site_status",
		"experience_id",
		"hub_id",
		"cluster_id",
		"experience_component_id",
	},
	Fields: func(s *model.Site) []any {
		return []any{
			&s.SiteName,
			&s.SiteDescription,
			&s.SiteCategory,
			&s.SiteLocation,
			&s.SiteSize,
			&s.SiteBoundaryNorth,
			&s.SiteBoundaryEast,
			&s.SiteBoundarySouth,
			&s.SiteBoundaryWest,
			&s.SiteDocumentation,
			&s.SiteStatus,
			&s.ExperienceID,
			&s.HubID,
			&s.ClusterID,
			&s.ExperienceComponentID,
		}
	},
	Meta:     func(s *model.Site) *model.Owned { return &s.Owned },
	Defaults: (*model.Site).ApplyDefaults,
}

var Clusters = Table[model.Cluster]{
	Name: "clusters",
	Columns: []string{
		"cluster_name",
		"cluster_description",
		"cluster_location",
		"cluster_size",
		"cluster_boundary_north",
		"cluster_boundary_east",
		"cluster_boundary_south",
		"cluster_boundary_west",
		"cluster_documentation",
		"cluster_status",
		"experience_id",
		"hub_id",
		"experience_component_id",
	},
	Fields: func(c *model.Cluster) []any {
		return []any{
			&c.ClusterName,
			&c.ClusterDescription,
			&c.ClusterLocation,
			&c.ClusterSize,
			&c.ClusterBoundaryNorth,
			&c.ClusterBoundaryEast,
			&c.ClusterBoundarySouth,
			&c.ClusterBoundaryWest,
			&c.ClusterDocumentation,
			&c.ClusterStatus,
			&c.ExperienceID,
			&c.HubID,
			&c.ExperienceComponentID,
		}
	},
	Meta:     func(c *model.Cluster) *model.Owned { return &c.Owned },
	Defaults: (*model.Cluster).ApplyDefaults,
}

var Artefacts = Table[model.Artefact]{
	Name: "artefacts",
	Columns: []string{
		"artefact_name",
		"artefact_description",
		"artefact_format",
		"artefact_location",
		"artefact_status",
		"artefact_theme",
		"artefact_card_id",
		"experience_id",
		"narrative_id",
		"substory_id",
		"site_id",
	},
	Fields: func(a *model.Artefact) []any {
		return []any{
			&a.ArtefactName,
			&a.ArtefactDescription,
			&a.ArtefactFormat,
			&a.ArtefactLocation,
			&a.ArtefactStatus,
			&a.ArtefactTheme,
			&a.ArtefactCardID,
			&a.ExperienceID,
			&a.NarrativeID,
			&a.SubstoryID,
			&a.SiteID,
		}
	},
	Meta:     func(a *model.Artefact) *model.Owned { return &a.Owned },
	Defaults: (*model.Artefact).ApplyDefaults,
}

var Hubs = Table[model.Hub]{
	Name: "hubs",
	Columns: []string{
		"hub_name",
		"hub_description",
		"hub_location",
		"hub_size",
		"hub_boundary_north",
		"hub_boundary_east",
		"hub_boundary_south",
		"hub_boundary_west",
		"hub_tags",
		"experience_id",
		"cluster_id",
	},
	Fields: func(h *model.Hub) []any {
		return []any{
			&h.HubName,
			&h.HubDescription,
			&h.HubLocation,
			&h.HubSize,
			&h.HubBoundaryNorth,
			&h.HubBoundaryEast,
			&h.HubBoundarySouth,
			&h.HubBoundaryWest,
			&h.HubTags,
			&h.ExperienceID,
			&h.ClusterID,
		}
	},
	Meta:     func(h *model.Hub) *model.Owned { return &h.Owned },
	Defaults: (*model.Hub).ApplyDefaults,
}

var Tours = Table[model.Tour]{
	Name: "tours",
	Columns: []string{
		"tour_name",
		"tour_description",
		"tour_theme",
		"tour_start_location",
		"tour_end_location",
		"tour_length",
		"tour_time",
		"tour_status",
		"experience_id",
		"narrative_id",
		"site_id",
	},
	Fields: func(t *model.Tour) []any {
		return []any{
			&t.TourName,
			&t.TourDescription,
			&t.TourTheme,
			&t.TourStartLocation,
			&t.TourEndLocation,
			&t.TourLength,
			&t.TourTime,
			&t.TourStatus,
			&t.ExperienceID,
			&t.NarrativeID,
			&t.SiteID,
		}
	},
	Meta:     func(t *model.Tour) *model.Owned { return &t.Owned },
	Defaults: (*model.Tour).ApplyDefaults,
}

var Feasibilities = Table[model.Feasibility]{
	Name: "feasibilities",
	Columns: []string{
		"feasibility_study_name",
		"feasibility_study_description",
		"feasibility_study_state",
		"feasibility_irr",
		"feasibility_roi",
		"feasibility_documentation",
		"feasible",
		"experience_id",
	},
	Fields: func(f *model.Feasibility) []any {
		return []any{
			&f.FeasibilityStudyName,
			&f.FeasibilityStudyDescription,
			&f.FeasibilityStudyState,
			&f.FeasibilityIRR,
			&f.FeasibilityROI,
			&f.FeasibilityDocumentation,
			&f.Feasible,
			&f.ExperienceID,
		}
	},
	Meta:     func(f *model.Feasibility) *model.Owned { return &f.Owned },
	Defaults: (*model.Feasibility).ApplyDefaults,
}
