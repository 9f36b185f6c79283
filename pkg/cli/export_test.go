package cli

var RenderAgenda = renderAgenda

var IndexConfig = indexConfig
