package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "SeqCompare Service"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the SeqCompare sequence comparison wizard!"
	SERVICE_DESCRIPTION ServiceInfo = "Multi-step sequence comparison service over genomic regions and genes."

	SERVICE_ARTIFACT    ServiceInfo = "seqcompare"
	SERVICE_VERSION     ServiceInfo = "0.0.1"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("org.seqcompare:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
	SERVICE_TYPE        ServiceInfo = ServiceInfo(fmt.Sprintf("%s:%s", SERVICE_TYPE_NO_VER, SERVICE_VERSION))
)
